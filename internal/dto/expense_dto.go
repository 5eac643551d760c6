package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateExpenseRequest struct {
	Description  string          `json:"description"   validate:"required,min=2,max=200"`
	Category     string          `json:"category"      validate:"required"`
	TotalAmount  decimal.Decimal `json:"total_amount"  validate:"required"`
	IsRecurring  bool            `json:"is_recurring"`
	IntervalDays *int            `json:"interval_days" validate:"omitempty,min=1"`
	NextDueDate  *string         `json:"next_due_date"` // YYYY-MM-DD
}

type RecordPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"         validate:"required"`
	PaymentDate   string          `json:"payment_date"   validate:"required"` // YYYY-MM-DD
	PaymentMethod *string         `json:"payment_method"`
	Reference     *string         `json:"reference"`
	Notes         *string         `json:"notes"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ExpenseFilter struct {
	Category string `form:"category"`
	Status   string `form:"status"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ExpenseResponse struct {
	ID           string          `json:"id"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PaidAmount   decimal.Decimal `json:"paid_amount"`
	Status       string          `json:"status"` // UNPAID | PARTIALLY_PAID | PAID
	IsRecurring  bool            `json:"is_recurring"`
	IntervalDays *int            `json:"interval_days,omitempty"`
	NextDueDate  *string         `json:"next_due_date,omitempty"`
	CreatedAt    string          `json:"created_at"`
}

type ExpenseListResponse struct {
	Data  []ExpenseResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

type PaymentResponse struct {
	ID            string          `json:"id"`
	ExpenseID     string          `json:"expense_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   string          `json:"payment_date"`
	PaymentMethod *string         `json:"payment_method"`
	Reference     *string         `json:"reference"`
	Notes         *string         `json:"notes"`
}

// RecordPaymentResponse is the 201 body: the new ledger entry plus the
// updated parent expense.
type RecordPaymentResponse struct {
	Payment PaymentResponse `json:"payment"`
	Expense ExpenseResponse `json:"expense"`
}
