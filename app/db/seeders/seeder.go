package seeders

import (
	"log"

	"github.com/nehalv/ecom-admin/app/db/fakers"
	"github.com/nehalv/ecom-admin/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{
			Name:        models.RoleAdmin,
			DisplayName: "Administrator",
			Permissions: datatypes.NewJSONSlice([]string{"catalogue.manage", "customers.manage"}),
			IsSystem:    true,
		},
		{
			Name:        models.RoleCustomer,
			DisplayName: "Customer",
			Permissions: datatypes.NewJSONSlice([]string{"orders.view"}),
		},
	}

	for i := range roles {
		if err := db.FirstOrCreate(&roles[i], "name = ?", roles[i].Name).Error; err != nil {
			return err
		}
	}
	return nil
}

// DBSeed populates roles, the bootstrap admin account and a small
// catalogue tree: attributes with values, a collection, a category and
// products with one price row each.
func DBSeed(db *gorm.DB) error {
	if err := seedRoles(db); err != nil {
		return err
	}

	admin := fakers.AdminUserFaker(db)
	if err := db.FirstOrCreate(admin, "email = ?", admin.Email).Error; err != nil {
		return err
	}

	attributeIDs := make([]uint64, 0, 3)
	valueIDs := make([]uint64, 0)
	for i := 0; i < 3; i++ {
		attribute := fakers.AttributeFaker(db, i+1, i == 0)
		if err := db.Create(attribute).Error; err != nil {
			return err
		}
		attributeIDs = append(attributeIDs, attribute.ID)
		for _, value := range attribute.Values {
			valueIDs = append(valueIDs, value.ID)
		}
	}

	collection := fakers.CollectionFaker(db, 1, attributeIDs)
	if err := db.Create(collection).Error; err != nil {
		return err
	}

	category := fakers.CategoryFaker(db, 1, collection.ID, valueIDs)
	if err := db.Create(category).Error; err != nil {
		return err
	}

	for i := 0; i < 5; i++ {
		product := fakers.ProductFaker(db, i+1, []uint64{category.ID})
		if err := db.Create(product).Error; err != nil {
			return err
		}

		price := models.ProductPrice{
			ProductID:          product.ID,
			AttributeValueIDs:  datatypes.NewJSONSlice(valueIDs[:1]),
			Stock:              10,
			MrpPrice:           decimal.NewFromInt(int64(500 + i*100)),
			SellingPrice:       decimal.NewFromInt(int64(450 + i*100)),
			DiscountPercentage: decimal.NewFromInt(10),
			DiscountedPrice:    decimal.NewFromInt(int64(450 + i*100)),
			Status:             models.StatusActive,
			Default:            models.StatusActive,
			Slug:               product.Slug + "-default",
			Index:              1,
		}
		if err := db.Create(&price).Error; err != nil {
			return err
		}
	}

	log.Println("Seeding complete.")
	return nil
}
