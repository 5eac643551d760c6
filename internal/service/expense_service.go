package service

import (
	"context"
	"time"

	"github.com/zorguiala/domdom/internal/apierror"
	"github.com/zorguiala/domdom/internal/dto"
	"github.com/zorguiala/domdom/internal/model"
	"github.com/zorguiala/domdom/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseService owns the expense payment ledger: every mutation of an
// expense's paid amount goes through RecordPayment so the ledger entry, the
// running balance and the derived status always move in one transaction.
type ExpenseService interface {
	Create(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ExpenseResponse, error)
	List(ctx context.Context, filter dto.ExpenseFilter) (*dto.ExpenseListResponse, error)
	RecordPayment(ctx context.Context, expenseID uuid.UUID, req dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error)
	ListPayments(ctx context.Context, expenseID uuid.UUID) ([]dto.PaymentResponse, error)
	// SpawnDueRecurring is called by the recurrence cron: clones every
	// recurring expense whose due date has passed and advances the due date.
	SpawnDueRecurring(ctx context.Context, now time.Time) (int, error)
}

type expenseService struct {
	repo repository.ExpenseRepository
}

func NewExpenseService(repo repository.ExpenseRepository) ExpenseService {
	return &expenseService{repo: repo}
}

// deriveExpenseStatus is a pure function of the two amounts; the stored
// status column is only ever written alongside the amounts that produce it.
func deriveExpenseStatus(paid, total decimal.Decimal) string {
	switch {
	case paid.GreaterThanOrEqual(total):
		return model.ExpensePaid
	case paid.IsPositive():
		return model.ExpensePartiallyPaid
	default:
		return model.ExpenseUnpaid
	}
}

func (s *expenseService) Create(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if !req.TotalAmount.IsPositive() {
		return nil, apierror.Validation("total_amount must be positive")
	}

	e := &model.Expense{
		Description: req.Description,
		Category:    req.Category,
		TotalAmount: req.TotalAmount,
		PaidAmount:  decimal.Zero,
		Status:      model.ExpenseUnpaid,
		IsRecurring: req.IsRecurring,
	}
	if req.IsRecurring {
		if req.IntervalDays == nil {
			return nil, apierror.Validation("interval_days is required for recurring expenses")
		}
		e.IntervalDays = req.IntervalDays
		if req.NextDueDate != nil {
			due, err := time.Parse("2006-01-02", *req.NextDueDate)
			if err != nil {
				return nil, apierror.Validation("next_due_date must be YYYY-MM-DD")
			}
			e.NextDueDate = &due
		} else {
			due := time.Now().AddDate(0, 0, *req.IntervalDays)
			e.NextDueDate = &due
		}
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, translateDBErr(err, "expense not found")
	}
	return expenseToResponse(e), nil
}

func (s *expenseService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ExpenseResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("expense not found")
	}
	return expenseToResponse(e), nil
}

func (s *expenseService) List(ctx context.Context, filter dto.ExpenseFilter) (*dto.ExpenseListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	expenses, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		items = append(items, *expenseToResponse(&expenses[i]))
	}
	return &dto.ExpenseListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// RecordPayment appends an immutable ledger entry and bumps the parent
// expense inside one transaction. Overpayment is rejected before any write,
// so a failed call leaves paid_amount and status untouched.
func (s *expenseService) RecordPayment(ctx context.Context, expenseID uuid.UUID, req dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, apierror.Validation("amount must be positive")
	}
	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		return nil, apierror.Validation("payment_date must be YYYY-MM-DD")
	}

	expense, err := s.repo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, apierror.NotFound("expense not found")
	}

	payment := &model.ExpensePayment{
		ExpenseID:     expense.ID,
		Amount:        req.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		Notes:         req.Notes,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// Re-read under a row lock: concurrent payments against the same
		// expense serialize here, so the balance check always sees the
		// committed paid amount.
		locked, err := s.repo.FindByIDForUpdateTx(tx, expenseID)
		if err != nil {
			return translateDBErr(err, "expense not found")
		}
		newPaid := locked.PaidAmount.Add(req.Amount)
		if newPaid.GreaterThan(locked.TotalAmount) {
			return apierror.BusinessRule("payment exceeds the remaining balance")
		}
		if err := s.repo.CreatePaymentTx(tx, payment); err != nil {
			return err
		}
		locked.PaidAmount = newPaid
		locked.Status = deriveExpenseStatus(newPaid, locked.TotalAmount)
		if err := s.repo.UpdateTx(tx, locked); err != nil {
			return err
		}
		expense = locked
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.RecordPaymentResponse{
		Payment: paymentToResponse(payment),
		Expense: *expenseToResponse(expense),
	}, nil
}

func (s *expenseService) ListPayments(ctx context.Context, expenseID uuid.UUID) ([]dto.PaymentResponse, error) {
	if _, err := s.repo.FindByID(ctx, expenseID); err != nil {
		return nil, apierror.NotFound("expense not found")
	}
	payments, err := s.repo.ListPayments(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, paymentToResponse(&payments[i]))
	}
	return out, nil
}

func (s *expenseService) SpawnDueRecurring(ctx context.Context, now time.Time) (int, error) {
	due, err := s.repo.ListDueRecurring(ctx, now)
	if err != nil {
		return 0, err
	}
	spawned := 0
	for i := range due {
		src := &due[i]
		clone := &model.Expense{
			Description: src.Description,
			Category:    src.Category,
			TotalAmount: src.TotalAmount,
			PaidAmount:  decimal.Zero,
			Status:      model.ExpenseUnpaid,
		}
		if err := s.repo.Create(ctx, clone); err != nil {
			return spawned, err
		}
		interval := 30
		if src.IntervalDays != nil {
			interval = *src.IntervalDays
		}
		next := src.NextDueDate.AddDate(0, 0, interval)
		src.NextDueDate = &next
		if err := s.repo.Update(ctx, src); err != nil {
			return spawned, err
		}
		spawned++
	}
	return spawned, nil
}

// ── Mappers ───────────────────────────────────────────────────────────────────

func expenseToResponse(e *model.Expense) *dto.ExpenseResponse {
	resp := &dto.ExpenseResponse{
		ID:           e.ID.String(),
		Description:  e.Description,
		Category:     e.Category,
		TotalAmount:  e.TotalAmount,
		PaidAmount:   e.PaidAmount,
		Status:       deriveExpenseStatus(e.PaidAmount, e.TotalAmount),
		IsRecurring:  e.IsRecurring,
		IntervalDays: e.IntervalDays,
		CreatedAt:    e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if e.NextDueDate != nil {
		d := e.NextDueDate.Format("2006-01-02")
		resp.NextDueDate = &d
	}
	return resp
}

func paymentToResponse(p *model.ExpensePayment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            p.ID.String(),
		ExpenseID:     p.ExpenseID.String(),
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate.Format("2006-01-02"),
		PaymentMethod: p.PaymentMethod,
		Reference:     p.Reference,
		Notes:         p.Notes,
	}
}
