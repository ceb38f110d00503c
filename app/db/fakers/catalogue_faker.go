package fakers

import (
	"math/rand"
	"strconv"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/nehalv/ecom-admin/app/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var swatches = []string{"#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#FF00FF"}

func AttributeFaker(db *gorm.DB, index int, isColor bool) *models.Attribute {
	name := faker.Word() + "-" + uuid.NewString()[:6]

	values := make([]models.AttributeValue, 0, 3)
	for i := 0; i < 3; i++ {
		valueName := faker.Word() + "-" + strconv.Itoa(i+1)
		value := models.AttributeValue{
			Name:   valueName,
			Slug:   slug.Make(valueName),
			Status: models.StatusActive,
			Index:  i + 1,
		}
		if isColor {
			color := swatches[rand.Intn(len(swatches))]
			value.Color = &color
		}
		values = append(values, value)
	}

	return &models.Attribute{
		Name:    name,
		Label:   faker.Word(),
		IsColor: isColor,
		Slug:    slug.Make(name),
		Status:  models.StatusInactive,
		Index:   index,
		Values:  values,
	}
}

func CollectionFaker(db *gorm.DB, index int, attributeIDs []uint64) *models.Collection {
	name := faker.Word() + "-" + uuid.NewString()[:6]
	return &models.Collection{
		Name:         name,
		AttributeIDs: datatypes.NewJSONSlice(attributeIDs),
		Status:       models.StatusActive,
		Slug:         slug.Make(name),
		Index:        index,
	}
}

func CategoryFaker(db *gorm.DB, index int, collectionID uint64, valueIDs []uint64) *models.Category {
	name := faker.Word() + "-" + uuid.NewString()[:6]
	return &models.Category{
		Name:                     name,
		CollectionID:             collectionID,
		ProductAvailableValueIDs: datatypes.NewJSONSlice(valueIDs),
		Status:                   models.StatusActive,
		Slug:                     slug.Make(name),
		Index:                    index,
	}
}

func ProductFaker(db *gorm.DB, index int, categoryIDs []uint64) *models.Product {
	name := faker.Word() + " " + faker.Word()
	slugText := slug.Make(name + "-" + uuid.NewString()[:6])

	return &models.Product{
		Name:             name,
		Slug:             slugText,
		CategoryIDs:      datatypes.NewJSONSlice(categoryIDs),
		Sku:              "SKU-" + uuid.NewString()[:8],
		Hsn:              strconv.Itoa(rand.Intn(9000) + 1000),
		Index:            index,
		ShortDescription: faker.Sentence(),
		Description:      faker.Paragraph(),
		Status:           models.StatusActive,
		Sale:             models.StatusInactive,
	}
}
