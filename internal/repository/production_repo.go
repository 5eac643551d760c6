package repository

import (
	"context"

	"github.com/zorguiala/domdom/internal/dto"
	"github.com/zorguiala/domdom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductionOrderRepository interface {
	CreateTx(tx *gorm.DB, o *model.ProductionOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ProductionOrder, error)
	List(ctx context.Context, filter dto.ProductionOrderFilter) ([]model.ProductionOrder, int64, error)
	Update(ctx context.Context, o *model.ProductionOrder) error
	UpdateTx(tx *gorm.DB, o *model.ProductionOrder) error
	Delete(ctx context.Context, id uuid.UUID) error

	// NextOrderNumber draws from a PostgreSQL sequence so concurrent creations
	// never collide and deletions never cause reuse. Must be called inside the
	// create transaction.
	NextOrderNumber(ctx context.Context, tx *gorm.DB) (int64, error)

	DB() *gorm.DB
}

type productionRepo struct{ db *gorm.DB }

func NewProductionOrderRepository(db *gorm.DB) ProductionOrderRepository {
	return &productionRepo{db: db}
}

func (r *productionRepo) CreateTx(tx *gorm.DB, o *model.ProductionOrder) error {
	return tx.Create(o).Error
}

func (r *productionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ProductionOrder, error) {
	var o model.ProductionOrder
	err := r.db.WithContext(ctx).Preload("Product").Preload("Bom").First(&o, id).Error
	return &o, err
}

func (r *productionRepo) List(ctx context.Context, filter dto.ProductionOrderFilter) ([]model.ProductionOrder, int64, error) {
	var orders []model.ProductionOrder
	var total int64

	q := r.db.WithContext(ctx).Model(&model.ProductionOrder{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Product").
		Order("order_number DESC").
		Limit(filter.Limit).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

func (r *productionRepo) Update(ctx context.Context, o *model.ProductionOrder) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *productionRepo) UpdateTx(tx *gorm.DB, o *model.ProductionOrder) error {
	return tx.Save(o).Error
}

func (r *productionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ProductionOrder{}, id).Error
}

func (r *productionRepo) NextOrderNumber(ctx context.Context, tx *gorm.DB) (int64, error) {
	var num int64
	err := tx.WithContext(ctx).Raw("SELECT nextval('production_order_number_seq')").Scan(&num).Error
	return num, err
}

func (r *productionRepo) DB() *gorm.DB { return r.db }
