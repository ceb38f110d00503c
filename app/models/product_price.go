package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// A price row belongs to one product and is keyed by the combination of
// attribute values it applies to (e.g. size=L, color=red).
type ProductPrice struct {
	ID                 uint64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID          uint64                      `gorm:"not null;index" json:"product_id"`
	AttributeValueIDs  datatypes.JSONSlice[uint64] `gorm:"column:attributevalue_ids;type:longtext" json:"attributevalue_ids"`
	Stock              int                         `gorm:"not null;default:0" json:"stock"`
	MrpPrice           decimal.Decimal             `gorm:"type:decimal(16,2);not null" json:"mrp_price"`
	SellingPrice       decimal.Decimal             `gorm:"type:decimal(16,2);not null" json:"selling_price"`
	DiscountPercentage decimal.Decimal             `gorm:"type:decimal(10,2);default:0.00" json:"discount_percentage"`
	DiscountedPrice    decimal.Decimal             `gorm:"type:decimal(16,2);default:0.00" json:"discounted_price"`
	Status             string                      `gorm:"size:20;not null;default:'INACTIVE'" json:"status"`
	Default            string                      `gorm:"size:20;not null;default:'INACTIVE'" json:"default"`
	Slug               string                      `gorm:"size:255" json:"slug"`
	Index              int                         `gorm:"not null" json:"index"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}
