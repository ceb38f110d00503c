package repositories

import (
	"context"

	"github.com/nehalv/ecom-admin/app/models"
	"gorm.io/gorm"
)

type AttributeRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Attribute, error)
	GetActive(ctx context.Context) ([]models.Attribute, error)
	GetByID(ctx context.Context, id uint64) (*models.Attribute, error)
	GetByIDWithValues(ctx context.Context, id uint64) (*models.Attribute, error)
	FindByIDsOrdered(ctx context.Context, ids []uint64) ([]models.Attribute, error)
	NextIndex(ctx context.Context) (int, error)
	ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error)
	Create(ctx context.Context, attribute *models.Attribute) error
	Update(ctx context.Context, attribute *models.Attribute) error
	Delete(ctx context.Context, id uint64) error
	ChangeStatus(ctx context.Context, id uint64, status string) (*models.Attribute, error)
}

type attributeRepository struct {
	db *gorm.DB
}

func NewAttributeRepository(db *gorm.DB) AttributeRepositoryImpl {
	return &attributeRepository{db: db}
}

func (r *attributeRepository) GetAll(ctx context.Context) ([]models.Attribute, error) {
	var attributes []models.Attribute
	err := r.db.WithContext(ctx).Order("`index` asc").Find(&attributes).Error
	if err != nil {
		return nil, err
	}
	return attributes, nil
}

func (r *attributeRepository) GetActive(ctx context.Context) ([]models.Attribute, error) {
	var attributes []models.Attribute
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("`index` asc").
		Find(&attributes).Error
	if err != nil {
		return nil, err
	}
	return attributes, nil
}

func (r *attributeRepository) GetByID(ctx context.Context, id uint64) (*models.Attribute, error) {
	var attribute models.Attribute
	err := r.db.WithContext(ctx).First(&attribute, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &attribute, nil
}

func (r *attributeRepository) GetByIDWithValues(ctx context.Context, id uint64) (*models.Attribute, error) {
	var attribute models.Attribute
	err := r.db.WithContext(ctx).
		Preload("Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("`index` asc")
		}).
		First(&attribute, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &attribute, nil
}

func (r *attributeRepository) FindByIDsOrdered(ctx context.Context, ids []uint64) ([]models.Attribute, error) {
	if len(ids) == 0 {
		return []models.Attribute{}, nil
	}

	var attributes []models.Attribute
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&attributes).Error
	if err != nil {
		return nil, err
	}
	return reorderByIDs(attributes, ids, func(a models.Attribute) uint64 { return a.ID }), nil
}

func (r *attributeRepository) NextIndex(ctx context.Context) (int, error) {
	var maxIndex int
	err := r.db.WithContext(ctx).
		Model(&models.Attribute{}).
		Select("COALESCE(MAX(`index`), 0)").
		Scan(&maxIndex).Error
	if err != nil {
		return 0, err
	}
	return maxIndex + 1, nil
}

func (r *attributeRepository) ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Attribute{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create assigns the next global index inside the insert transaction so
// concurrent creations cannot read the same MAX(index).
func (r *attributeRepository) Create(ctx context.Context, attribute *models.Attribute) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxIndex int
		if err := tx.Model(&models.Attribute{}).Select("COALESCE(MAX(`index`), 0)").Scan(&maxIndex).Error; err != nil {
			return err
		}
		attribute.Index = maxIndex + 1
		return tx.Create(attribute).Error
	})
}

func (r *attributeRepository) Update(ctx context.Context, attribute *models.Attribute) error {
	return r.db.WithContext(ctx).Save(attribute).Error
}

func (r *attributeRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attribute_id = ?", id).Delete(&models.AttributeValue{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Attribute{}, "id = ?", id).Error
	})
}

func (r *attributeRepository) ChangeStatus(ctx context.Context, id uint64, status string) (*models.Attribute, error) {
	attribute, err := r.GetByID(ctx, id)
	if err != nil || attribute == nil {
		return nil, err
	}

	attribute.Status = status
	if err := r.db.WithContext(ctx).Model(attribute).Update("status", status).Error; err != nil {
		return nil, err
	}
	return attribute, nil
}
