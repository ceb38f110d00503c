package fakers

import (
	"github.com/go-faker/faker/v4"
	"github.com/nehalv/ecom-admin/app/helpers"
	"github.com/nehalv/ecom-admin/app/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminUserFaker produces the bootstrap admin account.
func AdminUserFaker(db *gorm.DB) *models.User {
	return &models.User{
		FirstName:   "Admin",
		LastName:    "User",
		Email:       "admin@example.com",
		Mobile:      "9999999999",
		Password:    helpers.HashPassword("password"),
		Status:      models.StatusActive,
		Roles:       datatypes.NewJSONSlice([]string{models.RoleAdmin}),
		Permissions: datatypes.NewJSONSlice([]string{"catalogue.manage", "customers.manage"}),
	}
}

func UserFaker(db *gorm.DB) *models.User {
	return &models.User{
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Email:     faker.Email(),
		Mobile:    faker.Phonenumber(),
		Password:  helpers.HashPassword("password"),
		Status:    models.StatusActive,
		Roles:     datatypes.NewJSONSlice([]string{models.RoleCustomer}),
	}
}
