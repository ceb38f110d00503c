package repositories

import (
	"context"

	"github.com/nehalv/ecom-admin/app/models"
	"gorm.io/gorm"
)

type ProductPriceRepositoryImpl interface {
	GetByProductID(ctx context.Context, productID uint64) ([]models.ProductPrice, error)
	GetByID(ctx context.Context, id uint64) (*models.ProductPrice, error)
	Create(ctx context.Context, price *models.ProductPrice) error
	Update(ctx context.Context, price *models.ProductPrice) error
	Delete(ctx context.Context, id uint64) error
}

type productPriceRepository struct {
	db *gorm.DB
}

func NewProductPriceRepository(db *gorm.DB) ProductPriceRepositoryImpl {
	return &productPriceRepository{db: db}
}

func (r *productPriceRepository) GetByProductID(ctx context.Context, productID uint64) ([]models.ProductPrice, error) {
	var prices []models.ProductPrice
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("`index` asc").
		Find(&prices).Error
	if err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *productPriceRepository) GetByID(ctx context.Context, id uint64) (*models.ProductPrice, error) {
	var price models.ProductPrice
	err := r.db.WithContext(ctx).First(&price, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &price, nil
}

// Create assigns the next index within the owning product's price rows.
func (r *productPriceRepository) Create(ctx context.Context, price *models.ProductPrice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxIndex int
		err := tx.Model(&models.ProductPrice{}).
			Where("product_id = ?", price.ProductID).
			Select("COALESCE(MAX(`index`), 0)").
			Scan(&maxIndex).Error
		if err != nil {
			return err
		}
		price.Index = maxIndex + 1
		return tx.Create(price).Error
	})
}

func (r *productPriceRepository) Update(ctx context.Context, price *models.ProductPrice) error {
	return r.db.WithContext(ctx).Save(price).Error
}

func (r *productPriceRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.ProductPrice{}, "id = ?", id).Error
}
