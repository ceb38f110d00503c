package repositories

import (
	"context"
	"testing"

	"github.com/nehalv/ecom-admin/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCategory(t *testing.T, repo CategoryRepositoryImpl, name string, collectionID uint64, status string) *models.Category {
	t.Helper()
	category := &models.Category{
		Name:         name,
		CollectionID: collectionID,
		Status:       status,
		Slug:         name,
	}
	require.NoError(t, repo.Create(context.Background(), category))
	return category
}

func TestCategoryGetAllFilters(t *testing.T) {
	db := testDB(t)
	repo := NewCategoryRepository(db)
	collectionRepo := NewCollectionRepository(db)
	ctx := context.Background()

	summer := createCollection(t, collectionRepo, "summer", 1, nil)
	winter := createCollection(t, collectionRepo, "winter", 2, nil)

	shirts := createCategory(t, repo, "shirts", summer.ID, models.StatusActive)
	createCategory(t, repo, "coats", winter.ID, models.StatusActive)
	createCategory(t, repo, "shorts", summer.ID, models.StatusInactive)

	categories, err := repo.GetAll(ctx, CategoryListFilter{CollectionID: summer.ID})
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	categories, err = repo.GetAll(ctx, CategoryListFilter{Status: models.StatusActive, CollectionID: summer.ID})
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, shirts.ID, categories[0].ID)

	// The owning collection comes preloaded on listings.
	require.NotNil(t, categories[0].Collection)
	assert.Equal(t, "summer", categories[0].Collection.Name)
}

func TestCategoryGetActiveOrderedByName(t *testing.T) {
	db := testDB(t)
	repo := NewCategoryRepository(db)
	collectionRepo := NewCollectionRepository(db)
	ctx := context.Background()

	collection := createCollection(t, collectionRepo, "summer", 1, nil)

	createCategory(t, repo, "zippers", collection.ID, models.StatusActive)
	createCategory(t, repo, "aprons", collection.ID, models.StatusActive)
	createCategory(t, repo, "masks", collection.ID, models.StatusInactive)

	categories, err := repo.GetActiveOrderedByName(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "aprons", categories[0].Name)
	assert.Equal(t, "zippers", categories[1].Name)
}

func TestCategoryCreateIndexFallback(t *testing.T) {
	db := testDB(t)
	repo := NewCategoryRepository(db)
	collectionRepo := NewCollectionRepository(db)

	collection := createCollection(t, collectionRepo, "summer", 1, nil)

	first := createCategory(t, repo, "shirts", collection.ID, models.StatusActive)
	second := createCategory(t, repo, "pants", collection.ID, models.StatusActive)

	assert.Equal(t, 1, first.Index)
	assert.Equal(t, 2, second.Index)
}

func TestCategoryExistsByID(t *testing.T) {
	db := testDB(t)
	repo := NewCategoryRepository(db)
	collectionRepo := NewCollectionRepository(db)
	ctx := context.Background()

	collection := createCollection(t, collectionRepo, "summer", 1, nil)
	category := createCategory(t, repo, "shirts", collection.ID, models.StatusActive)

	exists, err := repo.ExistsByID(ctx, category.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, exists)
}
