package service

import (
	"context"
	"fmt"
	"time"

	"github.com/zorguiala/domdom/internal/apierror"
	"github.com/zorguiala/domdom/internal/dto"
	"github.com/zorguiala/domdom/internal/model"
	"github.com/zorguiala/domdom/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseService interface {
	Create(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error)
	List(ctx context.Context, filter dto.PurchaseFilter) (*dto.PurchaseListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdatePurchaseStatusRequest) (*dto.PurchaseResponse, error)
}

type purchaseService struct {
	repo         repository.PurchaseRepository
	supplierRepo repository.ContactRepository[model.Supplier]
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

func NewPurchaseService(
	repo repository.PurchaseRepository,
	supplierRepo repository.ContactRepository[model.Supplier],
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) PurchaseService {
	return &purchaseService{
		repo:         repo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

func (s *purchaseService) Create(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return nil, apierror.Validation("supplier_id is not a valid uuid")
	}
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, apierror.NotFound("supplier not found")
	}

	order := &model.PurchaseOrder{
		SupplierID: supplierID,
		Status:     model.PurchaseDraft,
		Notes:      req.Notes,
	}
	total := decimal.Zero
	for i, item := range req.Items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, apierror.Validation(fmt.Sprintf("items[%d].product_id is not a valid uuid", i))
		}
		if !item.Quantity.IsPositive() {
			return nil, apierror.Validation(fmt.Sprintf("items[%d].quantity must be positive", i))
		}
		if item.UnitCost.IsNegative() {
			return nil, apierror.Validation(fmt.Sprintf("items[%d].unit_cost cannot be negative", i))
		}
		if _, err := s.productRepo.FindByID(ctx, pid); err != nil {
			return nil, apierror.NotFound(fmt.Sprintf("product %s not found", item.ProductID))
		}
		subtotal := item.UnitCost.Mul(item.Quantity)
		total = total.Add(subtotal)
		order.Items = append(order.Items, model.PurchaseItem{
			ProductID: pid,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
			Subtotal:  subtotal,
		})
	}
	order.Total = total

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, translateDBErr(err, "purchase order not found")
	}
	return purchaseToResponse(order), nil
}

func (s *purchaseService) GetByID(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("purchase order not found")
	}
	return purchaseToResponse(order), nil
}

func (s *purchaseService) List(ctx context.Context, filter dto.PurchaseFilter) (*dto.PurchaseListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(orders))
	for i := range orders {
		items = append(items, *purchaseToResponse(&orders[i]))
	}
	return &dto.PurchaseListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// UpdateStatus moves a purchase order through its lifecycle. The transition
// to RECEIVED books every line into stock and records the movements in the
// same transaction; received and cancelled orders are terminal.
func (s *purchaseService) UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdatePurchaseStatusRequest) (*dto.PurchaseResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("purchase order not found")
	}
	if order.Status == model.PurchaseReceived || order.Status == model.PurchaseCancelled {
		return nil, apierror.BusinessRule(fmt.Sprintf("purchase order in status %s cannot change status", order.Status))
	}

	receiving := req.Status == model.PurchaseReceived
	order.Status = req.Status
	if receiving {
		now := time.Now().UTC()
		order.ReceivedAt = &now
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if receiving {
			for _, item := range order.Items {
				product, err := s.productRepo.FindByIDTx(tx, item.ProductID)
				if err != nil {
					return err
				}
				if err := s.productRepo.AdjustStockTx(tx, item.ProductID, item.Quantity); err != nil {
					return err
				}
				ref := order.ID
				mov := &model.StockMovement{
					ProductID:   item.ProductID,
					Type:        "purchase",
					Quantity:    item.Quantity,
					QtyBefore:   product.QtyOnHand,
					QtyAfter:    product.QtyOnHand.Add(item.Quantity),
					Reason:      fmt.Sprintf("Purchase order %s received", order.ID),
					ReferenceID: &ref,
				}
				if err := s.movementRepo.CreateTx(tx, mov); err != nil {
					return err
				}
			}
		}
		return s.repo.UpdateTx(tx, order)
	})
	if txErr != nil {
		return nil, txErr
	}

	return purchaseToResponse(order), nil
}

func purchaseToResponse(p *model.PurchaseOrder) *dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, item := range p.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, dto.PurchaseItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: name,
			Quantity:    item.Quantity,
			UnitCost:    item.UnitCost,
			Subtotal:    item.Subtotal,
		})
	}
	resp := &dto.PurchaseResponse{
		ID:         p.ID.String(),
		SupplierID: p.SupplierID.String(),
		Items:      items,
		Total:      p.Total,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if p.ReceivedAt != nil {
		t := p.ReceivedAt.Format("2006-01-02T15:04:05Z")
		resp.ReceivedAt = &t
	}
	return resp
}
