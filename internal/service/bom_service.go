package service

import (
	"context"
	"fmt"

	"github.com/zorguiala/domdom/internal/apierror"
	"github.com/zorguiala/domdom/internal/dto"
	"github.com/zorguiala/domdom/internal/model"
	"github.com/zorguiala/domdom/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BomService interface {
	Create(ctx context.Context, req dto.CreateBomRequest) (*dto.BomResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BomResponse, error)
	List(ctx context.Context) ([]dto.BomResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.CreateBomRequest) (*dto.BomResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bomService struct {
	repo        repository.BomRepository
	productRepo repository.ProductRepository
}

func NewBomService(repo repository.BomRepository, productRepo repository.ProductRepository) BomService {
	return &bomService{repo: repo, productRepo: productRepo}
}

// resolveComponents validates every referenced product and positive quantity
// before anything touches storage.
func (s *bomService) resolveComponents(ctx context.Context, reqs []dto.BomComponentRequest) ([]model.BomComponent, error) {
	components := make([]model.BomComponent, 0, len(reqs))
	for i, c := range reqs {
		pid, err := uuid.Parse(c.ProductID)
		if err != nil {
			return nil, apierror.Validation(fmt.Sprintf("components[%d].product_id is not a valid uuid", i))
		}
		if !c.Quantity.IsPositive() {
			return nil, apierror.Validation(fmt.Sprintf("components[%d].quantity must be positive", i))
		}
		if _, err := s.productRepo.FindByID(ctx, pid); err != nil {
			return nil, apierror.NotFound(fmt.Sprintf("component product %s does not exist", c.ProductID))
		}
		unit := c.Unit
		if unit == "" {
			unit = "unit"
		}
		components = append(components, model.BomComponent{
			ProductID: pid,
			Quantity:  c.Quantity,
			Unit:      unit,
			Position:  i,
		})
	}
	return components, nil
}

func (s *bomService) Create(ctx context.Context, req dto.CreateBomRequest) (*dto.BomResponse, error) {
	finalID, err := uuid.Parse(req.FinalProductID)
	if err != nil {
		return nil, apierror.Validation("final_product_id is not a valid uuid")
	}
	if _, err := s.productRepo.FindByID(ctx, finalID); err != nil {
		return nil, apierror.NotFound("final product does not exist")
	}
	components, err := s.resolveComponents(ctx, req.Components)
	if err != nil {
		return nil, err
	}

	bom := &model.BillOfMaterials{Name: req.Name, FinalProductID: finalID}

	// BOM header and component rows are created all-or-nothing.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, bom); err != nil {
			return err
		}
		return s.repo.ReplaceComponentsTx(tx, bom.ID, components)
	})
	if txErr != nil {
		return nil, translateDBErr(txErr, "bom not found")
	}

	return s.GetByID(ctx, bom.ID)
}

func (s *bomService) GetByID(ctx context.Context, id uuid.UUID) (*dto.BomResponse, error) {
	bom, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("bom not found")
	}
	return bomToResponse(bom), nil
}

func (s *bomService) List(ctx context.Context) ([]dto.BomResponse, error) {
	boms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BomResponse, 0, len(boms))
	for i := range boms {
		out = append(out, *bomToResponse(&boms[i]))
	}
	return out, nil
}

// Update replaces the entire component set atomically: after commit the
// stored components exactly match the submitted list, nothing stale survives.
func (s *bomService) Update(ctx context.Context, id uuid.UUID, req dto.CreateBomRequest) (*dto.BomResponse, error) {
	bom, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("bom not found")
	}
	finalID, err := uuid.Parse(req.FinalProductID)
	if err != nil {
		return nil, apierror.Validation("final_product_id is not a valid uuid")
	}
	if _, err := s.productRepo.FindByID(ctx, finalID); err != nil {
		return nil, apierror.NotFound("final product does not exist")
	}
	components, err := s.resolveComponents(ctx, req.Components)
	if err != nil {
		return nil, err
	}

	bom.Name = req.Name
	bom.FinalProductID = finalID

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateTx(tx, bom); err != nil {
			return err
		}
		return s.repo.ReplaceComponentsTx(tx, bom.ID, components)
	})
	if txErr != nil {
		return nil, translateDBErr(txErr, "bom not found")
	}

	return s.GetByID(ctx, id)
}

func (s *bomService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("bom not found")
	}
	return s.repo.Delete(ctx, id)
}

func bomToResponse(b *model.BillOfMaterials) *dto.BomResponse {
	components := make([]dto.BomComponentResponse, 0, len(b.Components))
	for _, c := range b.Components {
		name := ""
		if c.Product != nil {
			name = c.Product.Name
		}
		components = append(components, dto.BomComponentResponse{
			ID:          c.ID.String(),
			ProductID:   c.ProductID.String(),
			ProductName: name,
			Quantity:    c.Quantity,
			Unit:        c.Unit,
		})
	}
	return &dto.BomResponse{
		ID:             b.ID.String(),
		Name:           b.Name,
		FinalProductID: b.FinalProductID.String(),
		Components:     components,
	}
}
