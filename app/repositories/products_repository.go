package repositories

import (
	"context"

	"github.com/nehalv/ecom-admin/app/models"
	"gorm.io/gorm"
)

type ProductListFilter struct {
	Status string
	Sale   string
}

type ProductRepositoryImpl interface {
	GetAll(ctx context.Context, filter ProductListFilter) ([]models.Product, error)
	GetByID(ctx context.Context, id uint64) (*models.Product, error)
	GetByIDWithPrices(ctx context.Context, id uint64) (*models.Product, error)
	NextIndex(ctx context.Context) (int, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID uint64) (bool, error)
	ExistsBySku(ctx context.Context, sku string, excludeID uint64) (bool, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint64) error
	ChangeStatus(ctx context.Context, id uint64, status string) (*models.Product, error)
	ChangeSale(ctx context.Context, id uint64, sale string) (*models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetAll(ctx context.Context, filter ProductListFilter) ([]models.Product, error) {
	query := p.db.WithContext(ctx).Model(&models.Product{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Sale != "" {
		query = query.Where("sale = ?", filter.Sale)
	}

	var products []models.Product
	if err := query.Order("`index` asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) GetByID(ctx context.Context, id uint64) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetByIDWithPrices(ctx context.Context, id uint64) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Prices", func(db *gorm.DB) *gorm.DB {
			return db.Order("`index` asc")
		}).
		First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) NextIndex(ctx context.Context) (int, error) {
	var maxIndex int
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("COALESCE(MAX(`index`), 0)").
		Scan(&maxIndex).Error
	if err != nil {
		return 0, err
	}
	return maxIndex + 1, nil
}

func (p *productRepository) ExistsBySlug(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var count int64
	query := p.db.WithContext(ctx).Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (p *productRepository) ExistsBySku(ctx context.Context, sku string, excludeID uint64) (bool, error) {
	var count int64
	query := p.db.WithContext(ctx).Model(&models.Product{}).Where("sku = ?", sku)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if product.Index == 0 {
			var maxIndex int
			if err := tx.Model(&models.Product{}).Select("COALESCE(MAX(`index`), 0)").Scan(&maxIndex).Error; err != nil {
				return err
			}
			product.Index = maxIndex + 1
		}
		return tx.Create(product).Error
	})
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) Delete(ctx context.Context, id uint64) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductPrice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
}

func (p *productRepository) ChangeStatus(ctx context.Context, id uint64, status string) (*models.Product, error) {
	product, err := p.GetByID(ctx, id)
	if err != nil || product == nil {
		return nil, err
	}

	product.Status = status
	if err := p.db.WithContext(ctx).Model(product).Update("status", status).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// ChangeSale flips the sale flag only; it is independent of status.
func (p *productRepository) ChangeSale(ctx context.Context, id uint64, sale string) (*models.Product, error) {
	product, err := p.GetByID(ctx, id)
	if err != nil || product == nil {
		return nil, err
	}

	product.Sale = sale
	if err := p.db.WithContext(ctx).Model(product).Update("sale", sale).Error; err != nil {
		return nil, err
	}
	return product, nil
}
