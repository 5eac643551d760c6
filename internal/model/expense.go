package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense payment statuses. Status is always a pure function of
// PaidAmount vs TotalAmount and is recomputed inside the same transaction
// that mutates PaidAmount.
const (
	ExpenseUnpaid        = "UNPAID"
	ExpensePartiallyPaid = "PARTIALLY_PAID"
	ExpensePaid          = "PAID"
)

type Expense struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Description string    `gorm:"not null"`
	Category    string    `gorm:"not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaidAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Status      string          `gorm:"not null;default:'UNPAID'"`

	// Recurrence: when IsRecurring, a background cron clones the expense
	// every IntervalDays once NextDueDate passes.
	IsRecurring  bool `gorm:"not null;default:false"`
	IntervalDays *int
	NextDueDate  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Payments []ExpensePayment `gorm:"foreignKey:ExpenseID"`
}

// ExpensePayment is an immutable ledger entry. The sum of payment amounts
// for an expense equals the expense's PaidAmount at all times.
type ExpensePayment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ExpenseID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentDate   time.Time       `gorm:"not null"`
	PaymentMethod *string
	Reference     *string
	Notes         *string
	CreatedAt     time.Time
}
