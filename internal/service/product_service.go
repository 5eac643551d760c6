package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/zorguiala/domdom/internal/apierror"
	"github.com/zorguiala/domdom/internal/dto"
	"github.com/zorguiala/domdom/internal/model"
	"github.com/zorguiala/domdom/internal/repository"

	"github.com/google/uuid"
)

// ProductService defines the business logic contract for products.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

// generateSKU builds a server-side SKU from the product name plus a short
// random suffix: "WIDGET-9F2C1A".
func generateSKU(name string) string {
	prefix := strings.ToUpper(strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, name))
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	if prefix == "" {
		prefix = "PRD"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("%s-%s", prefix, suffix)
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.CostPrice.IsNegative() || req.SellPrice.IsNegative() {
		return nil, apierror.Validation("prices cannot be negative")
	}
	if req.QtyOnHand.IsNegative() {
		return nil, apierror.Validation("qty_on_hand cannot be negative")
	}
	if req.MinQty != nil && req.MinQty.IsNegative() {
		return nil, apierror.Validation("min_qty cannot be negative")
	}

	sku := req.SKU
	if sku == "" {
		sku = generateSKU(req.Name)
	} else if _, err := s.repo.FindBySKU(ctx, sku); err == nil {
		return nil, apierror.Conflict("a product with this SKU already exists")
	}

	category := req.Category
	if category == "" {
		category = "general"
	}
	unit := req.Unit
	if unit == "" {
		unit = "unit"
	}

	p := &model.Product{
		SKU:            sku,
		Name:           req.Name,
		Description:    req.Description,
		Category:       category,
		Unit:           unit,
		CostPrice:      req.CostPrice,
		SellPrice:      req.SellPrice,
		QtyOnHand:      req.QtyOnHand,
		MinQty:         req.MinQty,
		IsRawMaterial:  req.IsRawMaterial,
		IsFinishedGood: req.IsFinishedGood,
		Active:         true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, translateDBErr(err, "product not found")
	}
	return productToResponse(p), nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("product not found")
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *productToResponse(&products[i]))
	}
	return &dto.ProductListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("product not found")
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	if req.CostPrice != nil {
		if req.CostPrice.IsNegative() {
			return nil, apierror.Validation("cost_price cannot be negative")
		}
		p.CostPrice = *req.CostPrice
	}
	if req.SellPrice != nil {
		if req.SellPrice.IsNegative() {
			return nil, apierror.Validation("sell_price cannot be negative")
		}
		p.SellPrice = *req.SellPrice
	}
	if req.MinQty != nil {
		if req.MinQty.IsNegative() {
			return nil, apierror.Validation("min_qty cannot be negative")
		}
		p.MinQty = req.MinQty
	}
	if req.IsRawMaterial != nil {
		p.IsRawMaterial = *req.IsRawMaterial
	}
	if req.IsFinishedGood != nil {
		p.IsFinishedGood = *req.IsFinishedGood
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, translateDBErr(err, "product not found")
	}
	return productToResponse(p), nil
}

// Delete soft-deletes an unreferenced product. Products referenced by sales,
// purchases, production orders or BOMs cannot be removed.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("product not found")
	}
	refs, err := s.repo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apierror.Conflict("product is referenced by existing records and cannot be deleted")
	}
	return s.repo.SoftDelete(ctx, id)
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID.String(),
		SKU:            p.SKU,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		Unit:           p.Unit,
		CostPrice:      p.CostPrice,
		SellPrice:      p.SellPrice,
		QtyOnHand:      p.QtyOnHand,
		MinQty:         p.MinQty,
		Status:         ClassifyStock(p.QtyOnHand, p.MinQty),
		IsRawMaterial:  p.IsRawMaterial,
		IsFinishedGood: p.IsFinishedGood,
		Active:         p.Active,
	}
}
