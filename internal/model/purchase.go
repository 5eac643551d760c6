package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase order statuses. RECEIVED books the ordered quantities into stock.
const (
	PurchaseDraft     = "DRAFT"
	PurchaseOrdered   = "ORDERED"
	PurchaseReceived  = "RECEIVED"
	PurchaseCancelled = "CANCELLED"
)

type PurchaseOrder struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SupplierID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status     string          `gorm:"not null;default:'DRAFT'"`
	Notes      *string
	ReceivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Supplier *Supplier      `gorm:"foreignKey:SupplierID"`
	Items    []PurchaseItem `gorm:"foreignKey:PurchaseOrderID"`
}

type PurchaseItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	UnitCost        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
