package models

import (
	"time"
)

// Status for a customer lives on the owning User row, not here.
type Customer struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint64    `gorm:"not null;index" json:"user_id"`
	User          *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CustomerID    string    `gorm:"size:50;not null;uniqueIndex" json:"customer_id"`
	PersonalEmail *string   `gorm:"size:255;uniqueIndex" json:"personal_email"`
	Type          string    `gorm:"size:125;not null;default:'customer'" json:"type"`
	CreatedBy     *uint64   `json:"created_by,omitempty"`
	UpdatedBy     *uint64   `json:"updated_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
