package models

import (
	"time"

	"gorm.io/datatypes"
)

type Role struct {
	ID          uint64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string                      `gorm:"size:100;not null;uniqueIndex" json:"name"`
	DisplayName string                      `gorm:"size:100" json:"display_name"`
	Permissions datatypes.JSONSlice[string] `gorm:"type:longtext" json:"permissions"`
	IsSystem    bool                        `gorm:"not null;default:false" json:"is_system"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}
