package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee is an HR record with no derived state.
type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"not null"`
	Email      string    `gorm:"uniqueIndex;not null"`
	Position   string    `gorm:"not null"`
	Department *string
	HireDate   time.Time       `gorm:"not null"`
	Salary     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Active     bool            `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
