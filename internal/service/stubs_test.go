package service

// In-memory repository stubs shared by the service tests. DB() returns nil so
// runTx executes the callback without a live transaction.

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/zorguiala/domdom/internal/dto"
	"github.com/zorguiala/domdom/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNotFound = errors.New("record not found")

// ── ProductRepository stub ───────────────────────────────────────────────────

type stubProductRepo struct {
	products   map[uuid.UUID]*model.Product
	references map[uuid.UUID]int64
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products:   make(map[uuid.UUID]*model.Product),
		references: make(map[uuid.UUID]int64),
	}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *stubProductRepo) FindBySKU(_ context.Context, sku string) (*model.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			copied := *p
			return &copied, nil
		}
	}
	return nil, errNotFound
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Active {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) ListBelowMin(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Active && p.MinQty != nil && p.QtyOnHand.LessThanOrEqual(*p.MinQty) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok {
		return errNotFound
	}
	p.Active = false
	return nil
}

func (r *stubProductRepo) CountReferences(_ context.Context, id uuid.UUID) (int64, error) {
	return r.references[id], nil
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductRepo) AdjustStockTx(_ *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	p, ok := r.products[id]
	if !ok {
		return errNotFound
	}
	p.QtyOnHand = p.QtyOnHand.Add(delta)
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

// ── StockMovementRepository stub ─────────────────────────────────────────────

type stubMovementRepo struct {
	movements []*model.StockMovement
}

func (r *stubMovementRepo) Create(_ context.Context, m *model.StockMovement) error {
	return r.CreateTx(nil, m)
}

func (r *stubMovementRepo) CreateTx(_ *gorm.DB, m *model.StockMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movements = append(r.movements, m)
	return nil
}

func (r *stubMovementRepo) List(_ context.Context, _ dto.MovementFilter) ([]model.StockMovement, int64, error) {
	out := make([]model.StockMovement, 0, len(r.movements))
	for _, m := range r.movements {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

// ── ExpenseRepository stub ───────────────────────────────────────────────────

type stubExpenseRepo struct {
	expenses map[uuid.UUID]*model.Expense
	payments []*model.ExpensePayment
}

func newStubExpenseRepo() *stubExpenseRepo {
	return &stubExpenseRepo{expenses: make(map[uuid.UUID]*model.Expense)}
}

func (r *stubExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.expenses[e.ID] = e
	return nil
}

func (r *stubExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *stubExpenseRepo) List(_ context.Context, _ dto.ExpenseFilter) ([]model.Expense, int64, error) {
	var out []model.Expense
	for _, e := range r.expenses {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *stubExpenseRepo) ListDueRecurring(_ context.Context, now time.Time) ([]model.Expense, error) {
	var out []model.Expense
	for _, e := range r.expenses {
		if e.IsRecurring && e.NextDueDate != nil && !e.NextDueDate.After(now) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubExpenseRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Expense, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubExpenseRepo) CreatePaymentTx(_ *gorm.DB, p *model.ExpensePayment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.payments = append(r.payments, p)
	return nil
}

func (r *stubExpenseRepo) UpdateTx(_ *gorm.DB, e *model.Expense) error {
	copied := *e
	r.expenses[e.ID] = &copied
	return nil
}

func (r *stubExpenseRepo) ListPayments(_ context.Context, expenseID uuid.UUID) ([]model.ExpensePayment, error) {
	var out []model.ExpensePayment
	for _, p := range r.payments {
		if p.ExpenseID == expenseID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubExpenseRepo) Update(_ context.Context, e *model.Expense) error {
	return r.UpdateTx(nil, e)
}

func (r *stubExpenseRepo) DB() *gorm.DB { return nil }

// ── BomRepository stub ───────────────────────────────────────────────────────

type stubBomRepo struct {
	boms map[uuid.UUID]*model.BillOfMaterials
}

func newStubBomRepo() *stubBomRepo {
	return &stubBomRepo{boms: make(map[uuid.UUID]*model.BillOfMaterials)}
}

func (r *stubBomRepo) CreateTx(_ *gorm.DB, b *model.BillOfMaterials) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.boms[b.ID] = b
	return nil
}

func (r *stubBomRepo) FindByID(_ context.Context, id uuid.UUID) (*model.BillOfMaterials, error) {
	b, ok := r.boms[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *b
	copied.Components = append([]model.BomComponent(nil), b.Components...)
	sort.Slice(copied.Components, func(i, j int) bool {
		return copied.Components[i].Position < copied.Components[j].Position
	})
	return &copied, nil
}

func (r *stubBomRepo) List(_ context.Context) ([]model.BillOfMaterials, error) {
	var out []model.BillOfMaterials
	for _, b := range r.boms {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBomRepo) UpdateTx(_ *gorm.DB, b *model.BillOfMaterials) error {
	existing, ok := r.boms[b.ID]
	if !ok {
		return errNotFound
	}
	b.Components = existing.Components
	r.boms[b.ID] = b
	return nil
}

func (r *stubBomRepo) ReplaceComponentsTx(_ *gorm.DB, bomID uuid.UUID, components []model.BomComponent) error {
	b, ok := r.boms[bomID]
	if !ok {
		return errNotFound
	}
	b.Components = nil
	for i := range components {
		c := components[i]
		c.ID = uuid.New()
		c.BomID = bomID
		b.Components = append(b.Components, c)
	}
	return nil
}

func (r *stubBomRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.boms, id)
	return nil
}

func (r *stubBomRepo) DB() *gorm.DB { return nil }

// ── ProductionOrderRepository stub ───────────────────────────────────────────

type stubProductionRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*model.ProductionOrder
	seq    int64
}

func newStubProductionRepo() *stubProductionRepo {
	return &stubProductionRepo{orders: make(map[uuid.UUID]*model.ProductionOrder)}
}

func (r *stubProductionRepo) CreateTx(_ *gorm.DB, o *model.ProductionOrder) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.mu.Lock()
	r.orders[o.ID] = o
	r.mu.Unlock()
	return nil
}

func (r *stubProductionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ProductionOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *stubProductionRepo) List(_ context.Context, _ dto.ProductionOrderFilter) ([]model.ProductionOrder, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.ProductionOrder
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductionRepo) Update(_ context.Context, o *model.ProductionOrder) error {
	return r.UpdateTx(nil, o)
}

func (r *stubProductionRepo) UpdateTx(_ *gorm.DB, o *model.ProductionOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *o
	r.orders[o.ID] = &copied
	return nil
}

func (r *stubProductionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func (r *stubProductionRepo) NextOrderNumber(_ context.Context, _ *gorm.DB) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

func (r *stubProductionRepo) DB() *gorm.DB { return nil }

// ── SaleRepository stub ──────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales map[uuid.UUID]*model.Sale
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	for i := range s.Items {
		if s.Items[i].ID == uuid.Nil {
			s.Items[i].ID = uuid.New()
		}
		s.Items[i].SaleID = s.ID
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *s
	copied.Items = append([]model.SaleItem(nil), s.Items...)
	return &copied, nil
}

func (r *stubSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, int64, error) {
	var out []model.Sale
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubSaleRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status string) error {
	s, ok := r.sales[id]
	if !ok {
		return errNotFound
	}
	s.Status = status
	return nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

// ── PurchaseRepository stub ──────────────────────────────────────────────────

type stubPurchaseRepo struct {
	orders map[uuid.UUID]*model.PurchaseOrder
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{orders: make(map[uuid.UUID]*model.PurchaseOrder)}
}

func (r *stubPurchaseRepo) Create(_ context.Context, p *model.PurchaseOrder) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Items {
		if p.Items[i].ID == uuid.Nil {
			p.Items[i].ID = uuid.New()
		}
		p.Items[i].PurchaseOrderID = p.ID
	}
	r.orders[p.ID] = p
	return nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PurchaseOrder, error) {
	p, ok := r.orders[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *p
	copied.Items = append([]model.PurchaseItem(nil), p.Items...)
	return &copied, nil
}

func (r *stubPurchaseRepo) List(_ context.Context, _ dto.PurchaseFilter) ([]model.PurchaseOrder, int64, error) {
	var out []model.PurchaseOrder
	for _, p := range r.orders {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPurchaseRepo) UpdateTx(_ *gorm.DB, p *model.PurchaseOrder) error {
	if _, ok := r.orders[p.ID]; !ok {
		return errNotFound
	}
	copied := *p
	copied.Items = append([]model.PurchaseItem(nil), p.Items...)
	r.orders[p.ID] = &copied
	return nil
}

func (r *stubPurchaseRepo) DB() *gorm.DB { return nil }

// ── ContactRepository stub (suppliers) ───────────────────────────────────────

type stubSupplierRepo struct {
	suppliers map[uuid.UUID]*model.Supplier
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uuid.UUID]*model.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *stubSupplierRepo) FindByEmail(_ context.Context, email string) (*model.Supplier, error) {
	for _, s := range r.suppliers {
		if s.Email == email {
			copied := *s
			return &copied, nil
		}
	}
	return nil, errNotFound
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	var out []model.Supplier
	for _, s := range r.suppliers {
		if s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	s, ok := r.suppliers[id]
	if !ok {
		return errNotFound
	}
	s.Active = false
	return nil
}

// ── ContactRepository stub (clients) ─────────────────────────────────────────

type stubClientRepo struct {
	clients map[uuid.UUID]*model.Client
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[uuid.UUID]*model.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, c *model.Client) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clients[c.ID] = c
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *stubClientRepo) FindByEmail(_ context.Context, email string) (*model.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			copied := *c
			return &copied, nil
		}
	}
	return nil, errNotFound
}

func (r *stubClientRepo) List(_ context.Context) ([]model.Client, error) {
	var out []model.Client
	for _, c := range r.clients {
		if c.Active {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *model.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *stubClientRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	c, ok := r.clients[id]
	if !ok {
		return errNotFound
	}
	c.Active = false
	return nil
}
