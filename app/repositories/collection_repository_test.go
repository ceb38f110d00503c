package repositories

import (
	"context"
	"testing"

	"github.com/nehalv/ecom-admin/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func createCollection(t *testing.T, repo CollectionRepositoryImpl, name string, index int, attributeIDs []uint64) *models.Collection {
	t.Helper()
	collection := &models.Collection{
		Name:         name,
		AttributeIDs: datatypes.NewJSONSlice(attributeIDs),
		Status:       models.StatusActive,
		Slug:         name,
		Index:        index,
	}
	require.NoError(t, repo.Create(context.Background(), collection))
	return collection
}

func TestCollectionCreateHonorsSuppliedIndex(t *testing.T) {
	db := testDB(t)
	repo := NewCollectionRepository(db)

	supplied := createCollection(t, repo, "summer", 7, nil)
	assert.Equal(t, 7, supplied.Index)

	fallback := createCollection(t, repo, "winter", 0, nil)
	assert.Equal(t, 8, fallback.Index)
}

func TestCollectionGetAllOrdersByID(t *testing.T) {
	db := testDB(t)
	repo := NewCollectionRepository(db)

	// Indexes deliberately reversed; listing still follows insertion ids.
	first := createCollection(t, repo, "summer", 3, nil)
	second := createCollection(t, repo, "winter", 2, nil)
	third := createCollection(t, repo, "monsoon", 1, nil)

	collections, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, collections, 3)
	assert.Equal(t, first.ID, collections[0].ID)
	assert.Equal(t, second.ID, collections[1].ID)
	assert.Equal(t, third.ID, collections[2].ID)
}

func TestCollectionAttributeIDsRoundTrip(t *testing.T) {
	db := testDB(t)
	repo := NewCollectionRepository(db)
	attributeRepo := NewAttributeRepository(db)
	ctx := context.Background()

	size := createAttribute(t, attributeRepo, "size")
	color := createAttribute(t, attributeRepo, "color")
	material := createAttribute(t, attributeRepo, "material")

	created := createCollection(t, repo, "summer", 1, []uint64{material.ID, size.ID, color.ID})

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, []uint64{material.ID, size.ID, color.ID}, []uint64(fetched.AttributeIDs))

	resolved, err := attributeRepo.FindByIDsOrdered(ctx, fetched.AttributeIDs)
	require.NoError(t, err)
	require.Len(t, resolved, 3)
	assert.Equal(t, material.ID, resolved[0].ID)
	assert.Equal(t, size.ID, resolved[1].ID)
	assert.Equal(t, color.ID, resolved[2].ID)
}

func TestCollectionExistsByNameExcludesSelf(t *testing.T) {
	db := testDB(t)
	repo := NewCollectionRepository(db)
	ctx := context.Background()

	collection := createCollection(t, repo, "summer", 1, nil)

	taken, err := repo.ExistsByName(ctx, "summer", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsByName(ctx, "summer", collection.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestCollectionChangeStatusMissingRow(t *testing.T) {
	db := testDB(t)
	repo := NewCollectionRepository(db)

	missing, err := repo.ChangeStatus(context.Background(), 42, models.StatusInactive)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
