package models

import (
	"time"

	"gorm.io/datatypes"
)

// AttributeIDs is stored as a JSON array, not a join table. The order of
// the ids is caller-significant and round-trips through the resolver.
type Collection struct {
	ID           uint64                     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string                     `gorm:"size:255;not null;uniqueIndex" json:"name"`
	AttributeIDs datatypes.JSONSlice[uint64] `gorm:"type:longtext" json:"attribute_ids"`
	Status       string                     `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	Slug         string                     `gorm:"size:255" json:"slug"`
	Index        int                        `gorm:"not null" json:"index"`
	CreatedBy    *uint64                    `json:"created_by,omitempty"`
	UpdatedBy    *uint64                    `json:"updated_by,omitempty"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}
