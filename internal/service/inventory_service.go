package service

import (
	"context"

	"github.com/zorguiala/domdom/internal/apierror"
	"github.com/zorguiala/domdom/internal/dto"
	"github.com/zorguiala/domdom/internal/model"
	"github.com/zorguiala/domdom/internal/repository"
	"github.com/zorguiala/domdom/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryService owns manual stock adjustments, the movement log and
// low-stock alerting.
type InventoryService interface {
	AdjustStock(ctx context.Context, productID uuid.UUID, req dto.AdjustStockRequest) (*dto.ProductResponse, error)
	ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.MovementListResponse, error)
	ListAlerts(ctx context.Context) ([]dto.StockAlertResponse, error)
}

type inventoryService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	dispatcher   *worker.Dispatcher
	alertEmail   string
}

func NewInventoryService(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	dispatcher *worker.Dispatcher,
	alertEmail string,
) InventoryService {
	return &inventoryService{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		dispatcher:   dispatcher,
		alertEmail:   alertEmail,
	}
}

// AdjustStock applies a manual delta and records the movement in one
// transaction. Driving a product to or below its threshold enqueues a
// low-stock notification (best-effort, outside the tx).
func (s *inventoryService) AdjustStock(ctx context.Context, productID uuid.UUID, req dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, apierror.NotFound("product not found")
	}

	newQty := product.QtyOnHand.Add(req.Delta)
	if newQty.IsNegative() {
		return nil, apierror.BusinessRule("adjustment would drive stock negative")
	}

	txErr := runTx(ctx, s.productRepo.DB(), func(tx *gorm.DB) error {
		if err := s.productRepo.AdjustStockTx(tx, productID, req.Delta); err != nil {
			return err
		}
		mov := &model.StockMovement{
			ProductID: productID,
			Type:      "adjustment",
			Quantity:  req.Delta,
			QtyBefore: product.QtyOnHand,
			QtyAfter:  newQty,
			Reason:    req.Reason,
		}
		return s.movementRepo.CreateTx(tx, mov)
	})
	if txErr != nil {
		return nil, txErr
	}

	product.QtyOnHand = newQty
	s.notifyIfLow(ctx, product)
	return productToResponse(product), nil
}

// notifyIfLow fires a low-stock email job when the product sits at or below
// its threshold. Fire and forget: a full queue never fails the request.
func (s *inventoryService) notifyIfLow(ctx context.Context, p *model.Product) {
	if s.dispatcher == nil || s.alertEmail == "" {
		return
	}
	status := ClassifyStock(p.QtyOnHand, p.MinQty)
	if status == StockIn {
		return
	}
	_ = s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
		ToEmail: s.alertEmail,
		Subject: "Low stock: " + p.Name,
		Body:    "Product " + p.SKU + " (" + p.Name + ") is " + status + " with " + p.QtyOnHand.String() + " on hand.",
	})
}

func (s *inventoryService) ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.MovementListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	movements, total, err := s.movementRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		name := ""
		if m.Product != nil {
			name = m.Product.Name
		}
		items = append(items, dto.MovementResponse{
			ID:          m.ID.String(),
			ProductID:   m.ProductID.String(),
			ProductName: name,
			Type:        m.Type,
			Quantity:    m.Quantity,
			QtyBefore:   m.QtyBefore,
			QtyAfter:    m.QtyAfter,
			Reason:      m.Reason,
			CreatedAt:   m.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return &dto.MovementListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *inventoryService) ListAlerts(ctx context.Context) ([]dto.StockAlertResponse, error) {
	products, err := s.productRepo.ListBelowMin(ctx)
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.StockAlertResponse, 0, len(products))
	for i := range products {
		p := &products[i]
		alert := dto.StockAlertResponse{
			ProductID: p.ID.String(),
			SKU:       p.SKU,
			Name:      p.Name,
			QtyOnHand: p.QtyOnHand,
			Status:    ClassifyStock(p.QtyOnHand, p.MinQty),
		}
		if p.MinQty != nil {
			alert.MinQty = *p.MinQty
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}
