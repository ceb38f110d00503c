package repositories

import (
	"context"

	"github.com/nehalv/ecom-admin/app/models"
	"gorm.io/gorm"
)

type CollectionRepositoryImpl interface {
	// GetAll lists by id ascending; collections are the one listing that
	// does not order by index.
	GetAll(ctx context.Context) ([]models.Collection, error)
	GetActive(ctx context.Context) ([]models.Collection, error)
	GetByID(ctx context.Context, id uint64) (*models.Collection, error)
	NextIndex(ctx context.Context) (int, error)
	ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error)
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	Create(ctx context.Context, collection *models.Collection) error
	Update(ctx context.Context, collection *models.Collection) error
	Delete(ctx context.Context, id uint64) error
	ChangeStatus(ctx context.Context, id uint64, status string) (*models.Collection, error)
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepositoryImpl {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) GetAll(ctx context.Context) ([]models.Collection, error) {
	var collections []models.Collection
	err := r.db.WithContext(ctx).Order("id asc").Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *collectionRepository) GetActive(ctx context.Context) ([]models.Collection, error) {
	var collections []models.Collection
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("`index` asc").
		Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *collectionRepository) GetByID(ctx context.Context, id uint64) (*models.Collection, error) {
	var collection models.Collection
	err := r.db.WithContext(ctx).First(&collection, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) NextIndex(ctx context.Context) (int, error) {
	var maxIndex int
	err := r.db.WithContext(ctx).
		Model(&models.Collection{}).
		Select("COALESCE(MAX(`index`), 0)").
		Scan(&maxIndex).Error
	if err != nil {
		return 0, err
	}
	return maxIndex + 1, nil
}

func (r *collectionRepository) ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Collection{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *collectionRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Collection{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create keeps a caller-supplied index (the create form proposes one) and
// falls back to MAX(index)+1 inside the transaction when it is zero.
func (r *collectionRepository) Create(ctx context.Context, collection *models.Collection) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if collection.Index == 0 {
			var maxIndex int
			if err := tx.Model(&models.Collection{}).Select("COALESCE(MAX(`index`), 0)").Scan(&maxIndex).Error; err != nil {
				return err
			}
			collection.Index = maxIndex + 1
		}
		return tx.Create(collection).Error
	})
}

func (r *collectionRepository) Update(ctx context.Context, collection *models.Collection) error {
	return r.db.WithContext(ctx).Save(collection).Error
}

func (r *collectionRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.Collection{}, "id = ?", id).Error
}

func (r *collectionRepository) ChangeStatus(ctx context.Context, id uint64, status string) (*models.Collection, error) {
	collection, err := r.GetByID(ctx, id)
	if err != nil || collection == nil {
		return nil, err
	}

	collection.Status = status
	if err := r.db.WithContext(ctx).Model(collection).Update("status", status).Error; err != nil {
		return nil, err
	}
	return collection, nil
}
