package repositories

import (
	"context"

	"github.com/nehalv/ecom-admin/app/models"
	"gorm.io/gorm"
)

type CategoryListFilter struct {
	Status       string
	CollectionID uint64
}

type CategoryRepositoryImpl interface {
	GetAll(ctx context.Context, filter CategoryListFilter) ([]models.Category, error)
	GetActive(ctx context.Context) ([]models.Category, error)
	GetActiveOrderedByName(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uint64) (*models.Category, error)
	GetByIDWithCollection(ctx context.Context, id uint64) (*models.Category, error)
	FindByIDsOrdered(ctx context.Context, ids []uint64) ([]models.Category, error)
	NextIndex(ctx context.Context) (int, error)
	ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error)
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint64) error
	ChangeStatus(ctx context.Context, id uint64, status string) (*models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetAll(ctx context.Context, filter CategoryListFilter) ([]models.Category, error) {
	query := r.db.WithContext(ctx).Preload("Collection")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CollectionID != 0 {
		query = query.Where("collection_id = ?", filter.CollectionID)
	}

	var categories []models.Category
	if err := query.Order("`index` asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetActive(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("`index` asc").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetActiveOrderedByName(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("name asc").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint64) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByIDWithCollection(ctx context.Context, id uint64) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("Collection").First(&category, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByIDsOrdered(ctx context.Context, ids []uint64) ([]models.Category, error) {
	if len(ids) == 0 {
		return []models.Category{}, nil
	}

	var categories []models.Category
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return reorderByIDs(categories, ids, func(c models.Category) uint64 { return c.ID }), nil
}

func (r *categoryRepository) NextIndex(ctx context.Context) (int, error) {
	var maxIndex int
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Select("COALESCE(MAX(`index`), 0)").
		Scan(&maxIndex).Error
	if err != nil {
		return 0, err
	}
	return maxIndex + 1, nil
}

func (r *categoryRepository) ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if category.Index == 0 {
			var maxIndex int
			if err := tx.Model(&models.Category{}).Select("COALESCE(MAX(`index`), 0)").Scan(&maxIndex).Error; err != nil {
				return err
			}
			category.Index = maxIndex + 1
		}
		return tx.Create(category).Error
	})
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error
}

func (r *categoryRepository) ChangeStatus(ctx context.Context, id uint64, status string) (*models.Category, error) {
	category, err := r.GetByID(ctx, id)
	if err != nil || category == nil {
		return nil, err
	}

	category.Status = status
	if err := r.db.WithContext(ctx).Model(category).Update("status", status).Error; err != nil {
		return nil, err
	}
	return category, nil
}
