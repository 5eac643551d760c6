package service

import (
	"context"
	"fmt"

	"github.com/zorguiala/domdom/internal/apierror"
	"github.com/zorguiala/domdom/internal/dto"
	"github.com/zorguiala/domdom/internal/model"
	"github.com/zorguiala/domdom/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleService interface {
	Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type saleService struct {
	repo         repository.SaleRepository
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

func NewSaleService(
	repo repository.SaleRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) SaleService {
	return &saleService{repo: repo, productRepo: productRepo, movementRepo: movementRepo}
}

// Create resolves products and prices outside the transaction, then writes
// the sale, the per-line stock decrements and the movement log atomically.
func (s *saleService) Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	type resolvedItem struct {
		productID uuid.UUID
		name      string
		price     decimal.Decimal
		quantity  decimal.Decimal
		qtyBefore decimal.Decimal
		subtotal  decimal.Decimal
	}

	var clientID *uuid.UUID
	if req.ClientID != nil {
		id, err := uuid.Parse(*req.ClientID)
		if err != nil {
			return nil, apierror.Validation("client_id is not a valid uuid")
		}
		clientID = &id
	}

	var resolved []resolvedItem
	total := decimal.Zero
	for i, item := range req.Items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, apierror.Validation(fmt.Sprintf("items[%d].product_id is not a valid uuid", i))
		}
		if !item.Quantity.IsPositive() {
			return nil, apierror.Validation(fmt.Sprintf("items[%d].quantity must be positive", i))
		}
		p, err := s.productRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, apierror.NotFound(fmt.Sprintf("product %s not found", item.ProductID))
		}
		if !p.Active {
			return nil, apierror.BusinessRule(fmt.Sprintf("product %s is inactive and cannot be sold", p.Name))
		}
		if p.QtyOnHand.LessThan(item.Quantity) {
			return nil, apierror.BusinessRule(fmt.Sprintf("insufficient stock for %s: %s on hand", p.Name, p.QtyOnHand))
		}
		subtotal := p.SellPrice.Mul(item.Quantity)
		total = total.Add(subtotal)
		resolved = append(resolved, resolvedItem{
			productID: pid,
			name:      p.Name,
			price:     p.SellPrice,
			quantity:  item.Quantity,
			qtyBefore: p.QtyOnHand,
			subtotal:  subtotal,
		})
	}

	sale := model.Sale{
		ClientID: clientID,
		Total:    total,
		Status:   model.SaleCompleted,
		Notes:    req.Notes,
	}
	for _, r := range resolved {
		sale.Items = append(sale.Items, model.SaleItem{
			ProductID: r.productID,
			Quantity:  r.quantity,
			UnitPrice: r.price,
			Subtotal:  r.subtotal,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &sale); err != nil {
			return err
		}
		for _, r := range resolved {
			if err := s.productRepo.AdjustStockTx(tx, r.productID, r.quantity.Neg()); err != nil {
				return fmt.Errorf("decrementing stock of %s: %w", r.name, err)
			}
			ref := sale.ID
			mov := &model.StockMovement{
				ProductID:   r.productID,
				Type:        "sale",
				Quantity:    r.quantity.Neg(),
				QtyBefore:   r.qtyBefore,
				QtyAfter:    r.qtyBefore.Sub(r.quantity),
				Reason:      fmt.Sprintf("Sale %s", sale.ID),
				ReferenceID: &ref,
			}
			if err := s.movementRepo.CreateTx(tx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := saleToResponse(&sale)
	for i, r := range resolved {
		resp.Items[i].ProductName = r.name
	}
	return resp, nil
}

func (s *saleService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("sale not found")
	}
	return saleToResponse(sale), nil
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	sales, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		items = append(items, *saleToResponse(&sales[i]))
	}
	return &dto.SaleListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Cancel restores stock for every line and flips the status, atomically.
func (s *saleService) Cancel(ctx context.Context, id uuid.UUID) error {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("sale not found")
	}
	if sale.Status == model.SaleCancelled {
		return apierror.BusinessRule("sale is already cancelled")
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, item := range sale.Items {
			product, err := s.productRepo.FindByIDTx(tx, item.ProductID)
			if err != nil {
				return err
			}
			if err := s.productRepo.AdjustStockTx(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
			ref := sale.ID
			mov := &model.StockMovement{
				ProductID:   item.ProductID,
				Type:        "sale_cancel",
				Quantity:    item.Quantity,
				QtyBefore:   product.QtyOnHand,
				QtyAfter:    product.QtyOnHand.Add(item.Quantity),
				Reason:      fmt.Sprintf("Sale %s cancelled", sale.ID),
				ReferenceID: &ref,
			}
			if err := s.movementRepo.CreateTx(tx, mov); err != nil {
				return err
			}
		}
		return s.repo.UpdateStatusTx(tx, id, model.SaleCancelled)
	})
}

func saleToResponse(v *model.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(v.Items))
	for _, item := range v.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, dto.SaleItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}
	resp := &dto.SaleResponse{
		ID:        v.ID.String(),
		Items:     items,
		Total:     v.Total,
		Status:    v.Status,
		CreatedAt: v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if v.ClientID != nil {
		id := v.ClientID.String()
		resp.ClientID = &id
	}
	return resp
}
