package models

import (
	"time"

	"gorm.io/datatypes"
)

type Category struct {
	ID                       uint64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                     string                      `gorm:"size:255;not null;uniqueIndex" json:"name"`
	CollectionID             uint64                      `gorm:"not null;index" json:"collection_id"`
	Collection               *Collection                 `gorm:"foreignKey:CollectionID" json:"collection,omitempty"`
	ProductAvailableValueIDs datatypes.JSONSlice[uint64] `gorm:"type:longtext" json:"product_available_value_ids"`
	HeaderIndex              *int                        `json:"header_index"`
	SubHeaderIndex           *int                        `json:"sub_header_index"`
	Photo                    string                      `gorm:"type:text" json:"photo"`
	Status                   string                      `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	Slug                     string                      `gorm:"size:255" json:"slug"`
	Index                    int                         `gorm:"not null" json:"index"`
	CreatedBy                *uint64                     `json:"created_by,omitempty"`
	UpdatedBy                *uint64                     `json:"updated_by,omitempty"`
	CreatedAt                time.Time                   `json:"created_at"`
	UpdatedAt                time.Time                   `json:"updated_at"`
}
