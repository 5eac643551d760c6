package repository

import (
	"context"

	"github.com/zorguiala/domdom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact constrains the three contact tables, which share one shape and one
// validation contract. A single generic repository keeps them on one code path.
type Contact interface {
	model.Client | model.Supplier | model.Commercial
}

type ContactRepository[T Contact] interface {
	Create(ctx context.Context, c *T) error
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindByEmail(ctx context.Context, email string) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, c *T) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type contactRepo[T Contact] struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) ContactRepository[model.Client] {
	return &contactRepo[model.Client]{db: db}
}

func NewSupplierRepository(db *gorm.DB) ContactRepository[model.Supplier] {
	return &contactRepo[model.Supplier]{db: db}
}

func NewCommercialRepository(db *gorm.DB) ContactRepository[model.Commercial] {
	return &contactRepo[model.Commercial]{db: db}
}

func (r *contactRepo[T]) Create(ctx context.Context, c *T) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contactRepo[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var c T
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *contactRepo[T]) FindByEmail(ctx context.Context, email string) (*T, error) {
	var c T
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	return &c, err
}

func (r *contactRepo[T]) List(ctx context.Context) ([]T, error) {
	var contacts []T
	err := r.db.WithContext(ctx).Where("active = true").Order("company_name ASC").Find(&contacts).Error
	return contacts, err
}

func (r *contactRepo[T]) Update(ctx context.Context, c *T) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *contactRepo[T]) SoftDelete(ctx context.Context, id uuid.UUID) error {
	var zero T
	return r.db.WithContext(ctx).Model(&zero).Where("id = ?", id).Update("active", false).Error
}
