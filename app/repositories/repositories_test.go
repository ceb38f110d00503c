package repositories

import (
	"context"
	"testing"

	"github.com/nehalv/ecom-admin/app/models"
	"github.com/nehalv/ecom-admin/app/models/migrations"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an isolated in-memory database. Connections are capped at
// one so the pool never hands out a second, empty :memory: instance.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

// Rows inserted without an explicit status must come back ACTIVE, matching
// what the create handlers assume, with sale still off for products.
func TestStatusColumnDefaults(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Create(&models.Collection{Name: "summer", Slug: "summer", Index: 1}).Error)
	var collection models.Collection
	require.NoError(t, db.First(&collection, "name = ?", "summer").Error)
	require.Equal(t, models.StatusActive, collection.Status)

	require.NoError(t, db.Create(&models.Category{Name: "shirts", CollectionID: collection.ID, Slug: "shirts", Index: 1}).Error)
	var category models.Category
	require.NoError(t, db.First(&category, "name = ?", "shirts").Error)
	require.Equal(t, models.StatusActive, category.Status)

	require.NoError(t, db.Create(&models.Product{Name: "Tee", Slug: "tee", Sku: "TEE-1", Index: 1}).Error)
	var product models.Product
	require.NoError(t, db.First(&product, "slug = ?", "tee").Error)
	require.Equal(t, models.StatusActive, product.Status)
	require.Equal(t, models.StatusInactive, product.Sale)
}

func createAttribute(t *testing.T, repo AttributeRepositoryImpl, name string) *models.Attribute {
	t.Helper()
	attribute := &models.Attribute{
		Name:   name,
		Label:  name,
		Slug:   name,
		Status: models.StatusInactive,
	}
	require.NoError(t, repo.Create(context.Background(), attribute))
	return attribute
}
