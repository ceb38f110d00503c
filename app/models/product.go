package models

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	ID               uint64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string                      `gorm:"size:255;not null" json:"name"`
	Slug             string                      `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	CategoryIDs      datatypes.JSONSlice[uint64] `gorm:"type:longtext" json:"category_ids"`
	Sku              string                      `gorm:"size:100;not null;uniqueIndex" json:"sku"`
	Hsn              string                      `gorm:"size:100" json:"hsn"`
	Index            int                         `gorm:"not null" json:"index"`
	ShortDescription string                      `gorm:"type:text" json:"short_description"`
	Description      string                      `gorm:"type:longtext" json:"description"`
	Status           string                      `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	Sale             string                      `gorm:"size:20;not null;default:'INACTIVE'" json:"sale"`
	Prices           []ProductPrice              `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"prices,omitempty"`
	CreatedBy        *uint64                     `json:"created_by,omitempty"`
	UpdatedBy        *uint64                     `json:"updated_by,omitempty"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}
