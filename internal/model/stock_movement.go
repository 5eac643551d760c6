package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockMovement records every change to a product's quantity on hand.
// Created automatically on sales, purchase receipts, production completions
// and manual adjustments. Movements are immutable.
type StockMovement struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"not null"` // "sale" | "purchase" | "production" | "adjustment" | "sale_cancel"
	Quantity    decimal.Decimal `gorm:"type:decimal(12,3);not null"` // positive = in, negative = out
	QtyBefore   decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	QtyAfter    decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Reason      string
	ReferenceID *uuid.UUID `gorm:"type:uuid"` // sale, purchase or production order id if applicable
	CreatedAt   time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

// TableName overrides GORM's default pluralization.
func (StockMovement) TableName() string { return "stock_movements" }
