package models

import (
	"time"
)

type Attribute struct {
	ID        uint64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string           `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Label     string           `gorm:"size:100;not null" json:"label"`
	IsColor   bool             `gorm:"not null;default:false" json:"is_color"`
	Slug      string           `gorm:"size:255" json:"slug"`
	Status    string           `gorm:"size:20;not null;default:'INACTIVE'" json:"status"`
	Index     int              `gorm:"not null" json:"index"`
	Values    []AttributeValue `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE" json:"values,omitempty"`
	CreatedBy *uint64          `json:"created_by,omitempty"`
	UpdatedBy *uint64          `json:"updated_by,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
