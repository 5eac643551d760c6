package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a customer contact record. Email is unique per table; duplicate
// creation attempts surface as a conflict, never a second row.
type Client struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyName string    `gorm:"not null"`
	ContactName *string
	Email       string `gorm:"uniqueIndex;not null"`
	Phone       *string
	Address     *string
	TaxID       *string `gorm:"column:tax_id"`
	Active      bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Supplier is a vendor contact record.
type Supplier struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyName string    `gorm:"not null"`
	ContactName *string
	Email       string `gorm:"uniqueIndex;not null"`
	Phone       *string
	Address     *string
	TaxID       *string `gorm:"column:tax_id"`
	Active      bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Commercial is a sales-representative contact record.
type Commercial struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyName string    `gorm:"not null"`
	ContactName *string
	Email       string `gorm:"uniqueIndex;not null"`
	Phone       *string
	Address     *string
	TaxID       *string `gorm:"column:tax_id"`
	Active      bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
