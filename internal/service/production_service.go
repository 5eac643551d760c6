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
	"gorm.io/gorm"
)

type ProductionService interface {
	CreateOrder(ctx context.Context, req dto.CreateProductionOrderRequest) (*dto.ProductionOrderResponse, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*dto.ProductionOrderResponse, error)
	ListOrders(ctx context.Context, filter dto.ProductionOrderFilter) (*dto.ProductionOrderListResponse, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, req dto.UpdateProductionOrderRequest) (*dto.ProductionOrderResponse, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

type productionService struct {
	repo         repository.ProductionOrderRepository
	productRepo  repository.ProductRepository
	bomRepo      repository.BomRepository
	movementRepo repository.StockMovementRepository
}

func NewProductionService(
	repo repository.ProductionOrderRepository,
	productRepo repository.ProductRepository,
	bomRepo repository.BomRepository,
	movementRepo repository.StockMovementRepository,
) ProductionService {
	return &productionService{
		repo:         repo,
		productRepo:  productRepo,
		bomRepo:      bomRepo,
		movementRepo: movementRepo,
	}
}

// FormatOrderNumber renders a sequence value as a PO-NNNNNN order number.
func FormatOrderNumber(seq int64) string {
	return fmt.Sprintf("PO-%06d", seq)
}

// CreateOrder draws the order number from a database sequence inside the same
// transaction that inserts the row. Counting existing rows would hand two
// concurrent requests the same number and reuse numbers after deletions.
func (s *productionService) CreateOrder(ctx context.Context, req dto.CreateProductionOrderRequest) (*dto.ProductionOrderResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, apierror.Validation("product_id is not a valid uuid")
	}
	if !req.Quantity.IsPositive() {
		return nil, apierror.Validation("quantity must be positive")
	}
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, apierror.NotFound("product does not exist")
	}

	var bomID *uuid.UUID
	if req.BomID != nil {
		id, err := uuid.Parse(*req.BomID)
		if err != nil {
			return nil, apierror.Validation("bom_id is not a valid uuid")
		}
		bom, err := s.bomRepo.FindByID(ctx, id)
		if err != nil {
			return nil, apierror.NotFound("bom does not exist")
		}
		if bom.FinalProductID != productID {
			return nil, apierror.BusinessRule("bom does not produce the requested product")
		}
		bomID = &id
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	order := &model.ProductionOrder{
		ProductID: productID,
		BomID:     bomID,
		Quantity:  req.Quantity,
		Status:    model.OrderPlanned,
		Priority:  priority,
	}
	if order.StartDate, err = parseOptionalDate(req.StartDate, "start_date"); err != nil {
		return nil, err
	}
	if order.ExpectedEnd, err = parseOptionalDate(req.ExpectedEnd, "expected_end"); err != nil {
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		seq, err := s.repo.NextOrderNumber(ctx, tx)
		if err != nil {
			return err
		}
		order.OrderNumber = FormatOrderNumber(seq)
		return s.repo.CreateTx(tx, order)
	})
	if txErr != nil {
		return nil, translateDBErr(txErr, "production order not found")
	}

	return orderToResponse(order), nil
}

func (s *productionService) GetOrder(ctx context.Context, id uuid.UUID) (*dto.ProductionOrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("production order not found")
	}
	return orderToResponse(order), nil
}

func (s *productionService) ListOrders(ctx context.Context, filter dto.ProductionOrderFilter) (*dto.ProductionOrderListResponse, error) {
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
	items := make([]dto.ProductionOrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, *orderToResponse(&orders[i]))
	}
	return &dto.ProductionOrderListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// UpdateOrder applies field changes; a transition to COMPLETED additionally
// books the produced quantity into stock and records a production movement,
// all in one transaction.
func (s *productionService) UpdateOrder(ctx context.Context, id uuid.UUID, req dto.UpdateProductionOrderRequest) (*dto.ProductionOrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("production order not found")
	}

	completing := false
	if req.Status != nil && *req.Status != order.Status {
		if order.Status == model.OrderCompleted || order.Status == model.OrderCancelled {
			return nil, apierror.BusinessRule(fmt.Sprintf("order in status %s cannot change status", order.Status))
		}
		completing = *req.Status == model.OrderCompleted
		order.Status = *req.Status
	}
	if req.Priority != nil {
		order.Priority = *req.Priority
	}
	if req.Quantity != nil {
		if !req.Quantity.IsPositive() {
			return nil, apierror.Validation("quantity must be positive")
		}
		order.Quantity = *req.Quantity
	}
	if start, err := parseOptionalDate(req.StartDate, "start_date"); err != nil {
		return nil, err
	} else if start != nil {
		order.StartDate = start
	}
	if end, err := parseOptionalDate(req.ExpectedEnd, "expected_end"); err != nil {
		return nil, err
	} else if end != nil {
		order.ExpectedEnd = end
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if completing {
			product, err := s.productRepo.FindByIDTx(tx, order.ProductID)
			if err != nil {
				return err
			}
			if err := s.productRepo.AdjustStockTx(tx, order.ProductID, order.Quantity); err != nil {
				return err
			}
			ref := order.ID
			mov := &model.StockMovement{
				ProductID: order.ProductID,
				Type:      "production",
				Quantity:  order.Quantity,
				QtyBefore: product.QtyOnHand,
				QtyAfter:  product.QtyOnHand.Add(order.Quantity),
				Reason:    fmt.Sprintf("Production order %s completed", order.OrderNumber),
				ReferenceID: &ref,
			}
			if err := s.movementRepo.CreateTx(tx, mov); err != nil {
				return err
			}
		}
		return s.repo.UpdateTx(tx, order)
	})
	if txErr != nil {
		return nil, txErr
	}

	return orderToResponse(order), nil
}

func (s *productionService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("production order not found")
	}
	if order.Status == model.OrderInProgress {
		return apierror.BusinessRule("an order in progress cannot be deleted")
	}
	return s.repo.Delete(ctx, id)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func parseOptionalDate(s *string, field string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, apierror.Validation(field + " must be YYYY-MM-DD")
	}
	return &t, nil
}

func orderToResponse(o *model.ProductionOrder) *dto.ProductionOrderResponse {
	resp := &dto.ProductionOrderResponse{
		ID:          o.ID.String(),
		OrderNumber: o.OrderNumber,
		ProductID:   o.ProductID.String(),
		Quantity:    o.Quantity,
		Status:      o.Status,
		Priority:    o.Priority,
		CreatedAt:   o.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if o.Product != nil {
		resp.ProductName = o.Product.Name
	}
	if o.BomID != nil {
		id := o.BomID.String()
		resp.BomID = &id
	}
	if o.StartDate != nil {
		d := o.StartDate.Format("2006-01-02")
		resp.StartDate = &d
	}
	if o.ExpectedEnd != nil {
		d := o.ExpectedEnd.Format("2006-01-02")
		resp.ExpectedEnd = &d
	}
	return resp
}
