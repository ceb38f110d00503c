package migrations

import (
	"github.com/nehalv/ecom-admin/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Customer{},
		&models.Attribute{},
		&models.AttributeValue{},
		&models.Collection{},
		&models.Category{},
		&models.Product{},
		&models.ProductPrice{},
	)
}
