package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product covers both raw materials and finished goods. Stock status is
// derived from QtyOnHand/MinQty at read time and never persisted.
type Product struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SKU            string    `gorm:"column:sku;uniqueIndex;not null"`
	Name           string    `gorm:"index;not null"`
	Description    *string
	Category       string           `gorm:"not null;default:'general'"`
	Unit           string           `gorm:"not null;default:'unit'"`
	CostPrice      decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	SellPrice      decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	QtyOnHand      decimal.Decimal  `gorm:"type:decimal(12,3);not null;default:0"`
	MinQty         *decimal.Decimal `gorm:"type:decimal(12,3)"`
	IsRawMaterial  bool             `gorm:"not null;default:false"`
	IsFinishedGood bool             `gorm:"not null;default:false"`
	Active         bool             `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
