package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/nehalv/ecom-admin/app/models"
	"github.com/nehalv/ecom-admin/app/models/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func seedAttribute(t *testing.T, db *gorm.DB, name string, isColor bool) *models.Attribute {
	t.Helper()
	attribute := &models.Attribute{
		Name:    name,
		Label:   name,
		IsColor: isColor,
		Slug:    name,
		Status:  models.StatusInactive,
		Index:   1,
	}
	require.NoError(t, db.Create(attribute).Error)
	return attribute
}

func valuesOf(t *testing.T, db *gorm.DB, attributeID uint64) []models.AttributeValue {
	t.Helper()
	var values []models.AttributeValue
	require.NoError(t, db.Where("attribute_id = ?", attributeID).Order("`index` asc").Find(&values).Error)
	return values
}

func TestCreateValuesAssignsSubmissionOrder(t *testing.T) {
	db := testDB(t)
	reconciler := NewAttributeValueReconciler(db)
	attribute := seedAttribute(t, db, "size", false)

	err := reconciler.CreateValues(context.Background(), attribute, []AttributeValueInput{
		{Name: "Small"},
		{Name: "Medium"},
		{Name: "Large"},
	})
	require.NoError(t, err)

	values := valuesOf(t, db, attribute.ID)
	require.Len(t, values, 3)
	assert.Equal(t, "Small", values[0].Name)
	assert.Equal(t, "small", values[0].Slug)
	assert.Equal(t, 1, values[0].Index)
	assert.Equal(t, "Large", values[2].Name)
	assert.Equal(t, 3, values[2].Index)
	for _, value := range values {
		assert.Equal(t, models.StatusActive, value.Status)
	}
}

func TestCreateValuesForcesColorNullOnNonColorAttribute(t *testing.T) {
	db := testDB(t)
	reconciler := NewAttributeValueReconciler(db)

	plain := seedAttribute(t, db, "size", false)
	err := reconciler.CreateValues(context.Background(), plain, []AttributeValueInput{
		{Name: "Small", Color: "#FF0000"},
	})
	require.NoError(t, err)
	values := valuesOf(t, db, plain.ID)
	require.Len(t, values, 1)
	assert.Nil(t, values[0].Color)

	colored := seedAttribute(t, db, "color", true)
	err = reconciler.CreateValues(context.Background(), colored, []AttributeValueInput{
		{Name: "Red", Color: "#FF0000"},
	})
	require.NoError(t, err)
	values = valuesOf(t, db, colored.ID)
	require.Len(t, values, 1)
	require.NotNil(t, values[0].Color)
	assert.Equal(t, "#FF0000", *values[0].Color)
}

func TestReconcileUpdatesInsertsAndDeletes(t *testing.T) {
	db := testDB(t)
	reconciler := NewAttributeValueReconciler(db)
	ctx := context.Background()

	attribute := seedAttribute(t, db, "size", false)
	require.NoError(t, reconciler.CreateValues(ctx, attribute, []AttributeValueInput{
		{Name: "Small"},
		{Name: "Medium"},
		{Name: "Large"},
	}))
	existing := valuesOf(t, db, attribute.ID)
	require.Len(t, existing, 3)

	err := reconciler.Reconcile(ctx, attribute, ReconcileInput{
		ValueNames: map[string]string{
			fmt.Sprintf("%d", existing[0].ID): "Extra Small",
			fmt.Sprintf("%d", existing[2].ID): "Extra Large",
			"temp-1":                          "Medium Tall",
		},
		DeletedValues: fmt.Sprintf("%d", existing[1].ID),
	})
	require.NoError(t, err)

	values := valuesOf(t, db, attribute.ID)
	require.Len(t, values, 3)

	byID := make(map[uint64]models.AttributeValue, len(values))
	for _, value := range values {
		byID[value.ID] = value
	}

	assert.Equal(t, "Extra Small", byID[existing[0].ID].Name)
	assert.Equal(t, "extra-small", byID[existing[0].ID].Slug)
	assert.Equal(t, "Extra Large", byID[existing[2].ID].Name)
	assert.NotContains(t, byID, existing[1].ID)

	// The inserted row continues the owner's index sequence.
	inserted := values[len(values)-1]
	assert.Equal(t, "Medium Tall", inserted.Name)
	assert.Equal(t, 4, inserted.Index)
}

func TestReconcileIgnoresForeignRows(t *testing.T) {
	db := testDB(t)
	reconciler := NewAttributeValueReconciler(db)
	ctx := context.Background()

	size := seedAttribute(t, db, "size", false)
	color := seedAttribute(t, db, "color", true)
	require.NoError(t, reconciler.CreateValues(ctx, size, []AttributeValueInput{{Name: "Small"}}))
	require.NoError(t, reconciler.CreateValues(ctx, color, []AttributeValueInput{{Name: "Red", Color: "#FF0000"}}))

	sizeValues := valuesOf(t, db, size.ID)
	colorValues := valuesOf(t, db, color.ID)
	require.Len(t, sizeValues, 1)
	require.Len(t, colorValues, 1)

	// A delete list and update key pointing at another attribute's rows
	// must leave them untouched.
	err := reconciler.Reconcile(ctx, size, ReconcileInput{
		ValueNames: map[string]string{
			fmt.Sprintf("%d", colorValues[0].ID): "Hijacked",
		},
		DeletedValues: fmt.Sprintf("%d", colorValues[0].ID),
	})
	require.NoError(t, err)

	colorValues = valuesOf(t, db, color.ID)
	require.Len(t, colorValues, 1)
	assert.Equal(t, "Red", colorValues[0].Name)
}

func TestReconcileEmptyInputIsNoOp(t *testing.T) {
	db := testDB(t)
	reconciler := NewAttributeValueReconciler(db)
	ctx := context.Background()

	attribute := seedAttribute(t, db, "size", false)
	require.NoError(t, reconciler.CreateValues(ctx, attribute, []AttributeValueInput{{Name: "Small"}}))

	require.NoError(t, reconciler.Reconcile(ctx, attribute, ReconcileInput{}))

	values := valuesOf(t, db, attribute.ID)
	require.Len(t, values, 1)
	assert.Equal(t, "Small", values[0].Name)
}

func TestParseIDListSkipsGarbage(t *testing.T) {
	assert.Equal(t, []uint64{1, 2, 30}, parseIDList("1, 2,abc, 30"))
	assert.Nil(t, parseIDList("  "))
	assert.Nil(t, parseIDList(""))
}

func TestOrderedKeysNumericFirst(t *testing.T) {
	keys := orderedKeys(map[string]string{
		"temp-2": "b",
		"10":     "x",
		"2":      "y",
		"temp-1": "a",
	})
	assert.Equal(t, []string{"2", "10", "temp-1", "temp-2"}, keys)
}
