package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillOfMaterials declares the component products and quantities needed to
// produce one unit of a finished product.
type BillOfMaterials struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"not null"`
	FinalProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	FinalProduct *Product       `gorm:"foreignKey:FinalProductID"`
	Components   []BomComponent `gorm:"foreignKey:BomID"`
}

func (BillOfMaterials) TableName() string { return "bills_of_materials" }

// BomComponent is one line of a BOM. Updates replace the whole component set
// atomically, so rows carry no identity of their own beyond the PK.
type BomComponent struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BomID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Unit      string          `gorm:"not null;default:'unit'"`
	Position  int             `gorm:"not null;default:0"`
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
