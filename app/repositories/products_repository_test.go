package repositories

import (
	"context"
	"testing"

	"github.com/nehalv/ecom-admin/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProduct(t *testing.T, repo ProductRepositoryImpl, slug, sku string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:             slug,
		Slug:             slug,
		Sku:              sku,
		ShortDescription: "short",
		Description:      "long",
		Status:           models.StatusActive,
		Sale:             models.StatusInactive,
	}
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}

func TestProductCreateDefaultsAndIndex(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)

	first := createProduct(t, repo, "shirt", "SKU-1")
	second := createProduct(t, repo, "pants", "SKU-2")

	assert.Equal(t, 1, first.Index)
	assert.Equal(t, 2, second.Index)
	assert.Equal(t, models.StatusActive, first.Status)
	assert.Equal(t, models.StatusInactive, first.Sale)
}

func TestProductExistsBySlugAndSkuExcludeSelf(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := createProduct(t, repo, "shirt", "SKU-1")

	taken, err := repo.ExistsBySlug(ctx, "shirt", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsBySlug(ctx, "shirt", product.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.ExistsBySku(ctx, "SKU-1", product.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.ExistsBySku(ctx, "SKU-1", product.ID+1)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestProductGetAllFilters(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	active := createProduct(t, repo, "shirt", "SKU-1")
	inactive := createProduct(t, repo, "pants", "SKU-2")
	_, err := repo.ChangeStatus(ctx, inactive.ID, models.StatusInactive)
	require.NoError(t, err)
	_, err = repo.ChangeSale(ctx, active.ID, models.StatusActive)
	require.NoError(t, err)

	products, err := repo.GetAll(ctx, ProductListFilter{Status: models.StatusActive})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, active.ID, products[0].ID)

	products, err = repo.GetAll(ctx, ProductListFilter{Sale: models.StatusActive})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, active.ID, products[0].ID)

	products, err = repo.GetAll(ctx, ProductListFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductChangeSaleIndependentOfStatus(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := createProduct(t, repo, "shirt", "SKU-1")

	updated, err := repo.ChangeSale(ctx, product.ID, models.StatusActive)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.StatusActive, updated.Sale)
	assert.Equal(t, models.StatusActive, updated.Status)
}

func TestProductDeleteRemovesPrices(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	priceRepo := NewProductPriceRepository(db)
	ctx := context.Background()

	product := createProduct(t, repo, "shirt", "SKU-1")
	price := &models.ProductPrice{
		ProductID:    product.ID,
		Stock:        5,
		MrpPrice:     decimal.NewFromInt(500),
		SellingPrice: decimal.NewFromInt(450),
		Status:       models.StatusActive,
		Slug:         "shirt-default",
	}
	require.NoError(t, priceRepo.Create(ctx, price))

	require.NoError(t, repo.Delete(ctx, product.ID))

	prices, err := priceRepo.GetByProductID(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, prices)
}

func TestProductPriceIndexScopedPerProduct(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	priceRepo := NewProductPriceRepository(db)
	ctx := context.Background()

	shirt := createProduct(t, repo, "shirt", "SKU-1")
	pants := createProduct(t, repo, "pants", "SKU-2")

	for i := 0; i < 2; i++ {
		require.NoError(t, priceRepo.Create(ctx, &models.ProductPrice{
			ProductID: shirt.ID,
			MrpPrice:  decimal.NewFromInt(100),
			Status:    models.StatusInactive,
		}))
	}
	pantsPrice := &models.ProductPrice{
		ProductID: pants.ID,
		MrpPrice:  decimal.NewFromInt(100),
		Status:    models.StatusInactive,
	}
	require.NoError(t, priceRepo.Create(ctx, pantsPrice))

	assert.Equal(t, 1, pantsPrice.Index)

	prices, err := priceRepo.GetByProductID(ctx, shirt.ID)
	require.NoError(t, err)
	require.Len(t, prices, 2)
	assert.Equal(t, 1, prices[0].Index)
	assert.Equal(t, 2, prices[1].Index)
}
