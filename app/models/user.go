package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID          uint64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string                      `gorm:"size:50;not null" json:"first_name"`
	LastName    string                      `gorm:"size:50;not null" json:"last_name"`
	Email       string                      `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Mobile      string                      `gorm:"size:20;not null;uniqueIndex" json:"mobile"`
	Password    string                      `gorm:"size:255;not null" json:"-"`
	Status      string                      `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	Roles       datatypes.JSONSlice[string] `gorm:"type:longtext" json:"roles"`
	Permissions datatypes.JSONSlice[string] `gorm:"type:longtext" json:"permissions"`
	CreatedBy   *uint64                     `json:"created_by,omitempty"`
	UpdatedBy   *uint64                     `json:"updated_by,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
