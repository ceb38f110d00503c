package repositories

import (
	"context"
	"testing"

	"github.com/nehalv/ecom-admin/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeCreateAssignsSequentialIndex(t *testing.T) {
	db := testDB(t)
	repo := NewAttributeRepository(db)

	first := createAttribute(t, repo, "size")
	second := createAttribute(t, repo, "color")
	third := createAttribute(t, repo, "material")

	assert.Equal(t, 1, first.Index)
	assert.Equal(t, 2, second.Index)
	assert.Equal(t, 3, third.Index)
}

func TestAttributeCreateDefaults(t *testing.T) {
	db := testDB(t)
	repo := NewAttributeRepository(db)

	attribute := createAttribute(t, repo, "size")

	fetched, err := repo.GetByID(context.Background(), attribute.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, models.StatusInactive, fetched.Status)
	assert.Equal(t, 1, fetched.Index)
}

func TestAttributeNextIndexEmptyTable(t *testing.T) {
	db := testDB(t)
	repo := NewAttributeRepository(db)

	next, err := repo.NextIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, next)
}

func TestAttributeExistsByNameExcludesSelf(t *testing.T) {
	db := testDB(t)
	repo := NewAttributeRepository(db)
	ctx := context.Background()

	attribute := createAttribute(t, repo, "size")
	createAttribute(t, repo, "color")

	taken, err := repo.ExistsByName(ctx, "size", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	// Renaming to its own current name must pass.
	taken, err = repo.ExistsByName(ctx, "size", attribute.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.ExistsByName(ctx, "color", attribute.ID)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestAttributeDeleteRemovesValues(t *testing.T) {
	db := testDB(t)
	repo := NewAttributeRepository(db)
	valueRepo := NewAttributeValueRepository(db)
	ctx := context.Background()

	attribute := createAttribute(t, repo, "size")
	keep := createAttribute(t, repo, "color")

	for _, name := range []string{"S", "M"} {
		require.NoError(t, valueRepo.Create(ctx, &models.AttributeValue{
			AttributeID: attribute.ID,
			Name:        name,
			Slug:        name,
			Status:      models.StatusActive,
		}))
	}
	require.NoError(t, valueRepo.Create(ctx, &models.AttributeValue{
		AttributeID: keep.ID,
		Name:        "Red",
		Slug:        "red",
		Status:      models.StatusActive,
	}))

	require.NoError(t, repo.Delete(ctx, attribute.ID))

	gone, err := repo.GetByID(ctx, attribute.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	orphans, err := valueRepo.GetByAttributeID(ctx, attribute.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	kept, err := valueRepo.GetByAttributeID(ctx, keep.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestAttributeChangeStatus(t *testing.T) {
	db := testDB(t)
	repo := NewAttributeRepository(db)
	ctx := context.Background()

	attribute := createAttribute(t, repo, "size")

	updated, err := repo.ChangeStatus(ctx, attribute.ID, models.StatusActive)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.StatusActive, updated.Status)

	missing, err := repo.ChangeStatus(ctx, 9999, models.StatusActive)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAttributeValueIndexScopedPerAttribute(t *testing.T) {
	db := testDB(t)
	repo := NewAttributeRepository(db)
	valueRepo := NewAttributeValueRepository(db)
	ctx := context.Background()

	size := createAttribute(t, repo, "size")
	color := createAttribute(t, repo, "color")

	for _, name := range []string{"S", "M", "L"} {
		require.NoError(t, valueRepo.Create(ctx, &models.AttributeValue{
			AttributeID: size.ID, Name: name, Slug: name, Status: models.StatusActive,
		}))
	}
	red := &models.AttributeValue{AttributeID: color.ID, Name: "Red", Slug: "red", Status: models.StatusActive}
	require.NoError(t, valueRepo.Create(ctx, red))

	// A fresh owner starts its own sequence.
	assert.Equal(t, 1, red.Index)

	sizeValues, err := valueRepo.GetByAttributeID(ctx, size.ID)
	require.NoError(t, err)
	require.Len(t, sizeValues, 3)
	for i, value := range sizeValues {
		assert.Equal(t, i+1, value.Index)
	}
}

func TestAttributeFindByIDsOrdered(t *testing.T) {
	db := testDB(t)
	repo := NewAttributeRepository(db)
	ctx := context.Background()

	first := createAttribute(t, repo, "size")
	second := createAttribute(t, repo, "color")
	third := createAttribute(t, repo, "material")

	found, err := repo.FindByIDsOrdered(ctx, []uint64{third.ID, first.ID, second.ID})
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, third.ID, found[0].ID)
	assert.Equal(t, first.ID, found[1].ID)
	assert.Equal(t, second.ID, found[2].ID)

	// Unknown ids are dropped, order of the rest preserved.
	found, err = repo.FindByIDsOrdered(ctx, []uint64{9999, second.ID, first.ID})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, second.ID, found[0].ID)
	assert.Equal(t, first.ID, found[1].ID)

	found, err = repo.FindByIDsOrdered(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}
