package repository

import (
	"context"
	"time"

	"github.com/zorguiala/domdom/internal/dto"
	"github.com/zorguiala/domdom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Expense, error)
	List(ctx context.Context, filter dto.ExpenseFilter) ([]model.Expense, int64, error)
	ListDueRecurring(ctx context.Context, now time.Time) ([]model.Expense, error)

	// Payment ledger. Always used inside a transaction so that the ledger
	// entry, the running paid amount and the derived status move together.
	// FindByIDForUpdateTx takes a row lock, serializing concurrent payments
	// against the same expense.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Expense, error)
	CreatePaymentTx(tx *gorm.DB, p *model.ExpensePayment) error
	UpdateTx(tx *gorm.DB, e *model.Expense) error
	ListPayments(ctx context.Context, expenseID uuid.UUID) ([]model.ExpensePayment, error)

	Update(ctx context.Context, e *model.Expense) error
	DB() *gorm.DB
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *expenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Expense, error) {
	var e model.Expense
	err := r.db.WithContext(ctx).First(&e, id).Error
	return &e, err
}

func (r *expenseRepo) List(ctx context.Context, filter dto.ExpenseFilter) ([]model.Expense, int64, error) {
	var expenses []model.Expense
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Expense{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&expenses).Error
	return expenses, total, err
}

func (r *expenseRepo) ListDueRecurring(ctx context.Context, now time.Time) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).
		Where("is_recurring = true AND next_due_date IS NOT NULL AND next_due_date <= ?", now).
		Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Expense, error) {
	var e model.Expense
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&e, id).Error
	return &e, err
}

func (r *expenseRepo) CreatePaymentTx(tx *gorm.DB, p *model.ExpensePayment) error {
	return tx.Create(p).Error
}

func (r *expenseRepo) UpdateTx(tx *gorm.DB, e *model.Expense) error {
	return tx.Save(e).Error
}

func (r *expenseRepo) ListPayments(ctx context.Context, expenseID uuid.UUID) ([]model.ExpensePayment, error) {
	var payments []model.ExpensePayment
	err := r.db.WithContext(ctx).
		Where("expense_id = ?", expenseID).
		Order("payment_date DESC, created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *expenseRepo) Update(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *expenseRepo) DB() *gorm.DB { return r.db }
