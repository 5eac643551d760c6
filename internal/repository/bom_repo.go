package repository

import (
	"context"

	"github.com/zorguiala/domdom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BomRepository interface {
	CreateTx(tx *gorm.DB, b *model.BillOfMaterials) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.BillOfMaterials, error)
	List(ctx context.Context) ([]model.BillOfMaterials, error)
	UpdateTx(tx *gorm.DB, b *model.BillOfMaterials) error

	// ReplaceComponentsTx deletes every existing component row for the BOM and
	// inserts the new set, all inside the caller's transaction. After commit
	// the stored set exactly matches the submitted one.
	ReplaceComponentsTx(tx *gorm.DB, bomID uuid.UUID, components []model.BomComponent) error

	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type bomRepo struct{ db *gorm.DB }

func NewBomRepository(db *gorm.DB) BomRepository { return &bomRepo{db: db} }

func (r *bomRepo) CreateTx(tx *gorm.DB, b *model.BillOfMaterials) error {
	return tx.Create(b).Error
}

func (r *bomRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.BillOfMaterials, error) {
	var b model.BillOfMaterials
	err := r.db.WithContext(ctx).
		Preload("Components", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Components.Product").
		First(&b, id).Error
	return &b, err
}

func (r *bomRepo) List(ctx context.Context) ([]model.BillOfMaterials, error) {
	var boms []model.BillOfMaterials
	err := r.db.WithContext(ctx).
		Preload("Components", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Components.Product").
		Order("name ASC").
		Find(&boms).Error
	return boms, err
}

func (r *bomRepo) UpdateTx(tx *gorm.DB, b *model.BillOfMaterials) error {
	return tx.Model(&model.BillOfMaterials{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"name":             b.Name,
		"final_product_id": b.FinalProductID,
	}).Error
}

func (r *bomRepo) ReplaceComponentsTx(tx *gorm.DB, bomID uuid.UUID, components []model.BomComponent) error {
	if err := tx.Where("bom_id = ?", bomID).Delete(&model.BomComponent{}).Error; err != nil {
		return err
	}
	if len(components) == 0 {
		return nil
	}
	for i := range components {
		components[i].BomID = bomID
		components[i].Position = i
	}
	return tx.Create(&components).Error
}

func (r *bomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bom_id = ?", id).Delete(&model.BomComponent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.BillOfMaterials{}, id).Error
	})
}

func (r *bomRepo) DB() *gorm.DB { return r.db }
