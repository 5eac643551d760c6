package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale statuses.
const (
	SaleCompleted = "COMPLETED"
	SaleCancelled = "CANCELLED"
)

// Sale is a customer sale with line items. Creating a sale decrements stock
// per line inside one transaction; cancelling restores it.
type Sale struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientID  *uuid.UUID      `gorm:"type:uuid;index"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status    string          `gorm:"not null;default:'COMPLETED'"`
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Client *Client    `gorm:"foreignKey:ClientID"`
	Items  []SaleItem `gorm:"foreignKey:SaleID"`
}

type SaleItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
