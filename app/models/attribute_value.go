package models

import (
	"time"
)

type AttributeValue struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	AttributeID uint64    `gorm:"not null;index" json:"attribute_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Slug        string    `gorm:"size:255" json:"slug"`
	Color       *string   `gorm:"size:7" json:"color"`
	Status      string    `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	Index       int       `gorm:"not null" json:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
