package repositories

import (
	"context"

	"github.com/nehalv/ecom-admin/app/models"
	"gorm.io/gorm"
)

type AttributeValueRepositoryImpl interface {
	GetByAttributeID(ctx context.Context, attributeID uint64) ([]models.AttributeValue, error)
	GetByID(ctx context.Context, id uint64) (*models.AttributeValue, error)
	FindByIDsOrdered(ctx context.Context, ids []uint64) ([]models.AttributeValue, error)
	NextIndex(ctx context.Context, attributeID uint64) (int, error)
	Create(ctx context.Context, value *models.AttributeValue) error
	Update(ctx context.Context, value *models.AttributeValue) error
	Delete(ctx context.Context, id uint64) error
}

type attributeValueRepository struct {
	db *gorm.DB
}

func NewAttributeValueRepository(db *gorm.DB) AttributeValueRepositoryImpl {
	return &attributeValueRepository{db: db}
}

func (r *attributeValueRepository) GetByAttributeID(ctx context.Context, attributeID uint64) ([]models.AttributeValue, error) {
	var values []models.AttributeValue
	err := r.db.WithContext(ctx).
		Where("attribute_id = ?", attributeID).
		Order("`index` asc").
		Find(&values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *attributeValueRepository) GetByID(ctx context.Context, id uint64) (*models.AttributeValue, error) {
	var value models.AttributeValue
	err := r.db.WithContext(ctx).First(&value, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &value, nil
}

func (r *attributeValueRepository) FindByIDsOrdered(ctx context.Context, ids []uint64) ([]models.AttributeValue, error) {
	if len(ids) == 0 {
		return []models.AttributeValue{}, nil
	}

	var values []models.AttributeValue
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&values).Error
	if err != nil {
		return nil, err
	}
	return reorderByIDs(values, ids, func(v models.AttributeValue) uint64 { return v.ID }), nil
}

// NextIndex is scoped per owning attribute, not global.
func (r *attributeValueRepository) NextIndex(ctx context.Context, attributeID uint64) (int, error) {
	var maxIndex int
	err := r.db.WithContext(ctx).
		Model(&models.AttributeValue{}).
		Where("attribute_id = ?", attributeID).
		Select("COALESCE(MAX(`index`), 0)").
		Scan(&maxIndex).Error
	if err != nil {
		return 0, err
	}
	return maxIndex + 1, nil
}

func (r *attributeValueRepository) Create(ctx context.Context, value *models.AttributeValue) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxIndex int
		err := tx.Model(&models.AttributeValue{}).
			Where("attribute_id = ?", value.AttributeID).
			Select("COALESCE(MAX(`index`), 0)").
			Scan(&maxIndex).Error
		if err != nil {
			return err
		}
		value.Index = maxIndex + 1
		return tx.Create(value).Error
	})
}

func (r *attributeValueRepository) Update(ctx context.Context, value *models.AttributeValue) error {
	return r.db.WithContext(ctx).Save(value).Error
}

func (r *attributeValueRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.AttributeValue{}, "id = ?", id).Error
}
