package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Production order statuses. Transitions are externally driven; completing
// an order books the finished quantity into stock.
const (
	OrderPlanned    = "PLANNED"
	OrderInProgress = "IN_PROGRESS"
	OrderCompleted  = "COMPLETED"
	OrderCancelled  = "CANCELLED"
)

// Production order priorities.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// ProductionOrder is a request to produce a quantity of a product, optionally
// against a BOM. OrderNumber is drawn from a database sequence inside the
// create transaction, so concurrent creations never collide and deletions
// never cause number reuse.
type ProductionOrder struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber string          `gorm:"uniqueIndex;not null"` // PO-NNNNNN
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	BomID       *uuid.UUID      `gorm:"type:uuid"`
	Quantity    decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Status      string          `gorm:"not null;default:'PLANNED'"`
	Priority    string          `gorm:"not null;default:'MEDIUM'"`
	StartDate   *time.Time
	ExpectedEnd *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Product *Product         `gorm:"foreignKey:ProductID"`
	Bom     *BillOfMaterials `gorm:"foreignKey:BomID"`
}
