package service

import (
	"context"

	"github.com/zorguiala/domdom/internal/apierror"
	"github.com/zorguiala/domdom/internal/dto"
	"github.com/zorguiala/domdom/internal/model"
	"github.com/zorguiala/domdom/internal/repository"

	"github.com/google/uuid"
)

// ContactService serves clients, suppliers and commercials from one generic
// implementation, since the three tables share a shape and a validation contract.
type ContactService[T repository.Contact] interface {
	Create(ctx context.Context, req dto.ContactRequest) (*dto.ContactResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ContactResponse, error)
	List(ctx context.Context) ([]dto.ContactResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.ContactRequest) (*dto.ContactResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactService[T repository.Contact] struct {
	repo  repository.ContactRepository[T]
	label string // "client" | "supplier" | "commercial", used in error messages
}

func NewClientService(repo repository.ContactRepository[model.Client]) ContactService[model.Client] {
	return &contactService[model.Client]{repo: repo, label: "client"}
}

func NewSupplierService(repo repository.ContactRepository[model.Supplier]) ContactService[model.Supplier] {
	return &contactService[model.Supplier]{repo: repo, label: "supplier"}
}

func NewCommercialService(repo repository.ContactRepository[model.Commercial]) ContactService[model.Commercial] {
	return &contactService[model.Commercial]{repo: repo, label: "commercial"}
}

// contactFields gives the generic service uniform access to the concrete
// contact structs without reflection.
func contactFields[T repository.Contact](c *T) (id *uuid.UUID, company, email *string, contactName, phone, address, taxID **string, active *bool) {
	switch v := any(c).(type) {
	case *model.Client:
		return &v.ID, &v.CompanyName, &v.Email, &v.ContactName, &v.Phone, &v.Address, &v.TaxID, &v.Active
	case *model.Supplier:
		return &v.ID, &v.CompanyName, &v.Email, &v.ContactName, &v.Phone, &v.Address, &v.TaxID, &v.Active
	case *model.Commercial:
		return &v.ID, &v.CompanyName, &v.Email, &v.ContactName, &v.Phone, &v.Address, &v.TaxID, &v.Active
	}
	panic("unreachable contact type")
}

func (s *contactService[T]) apply(c *T, req dto.ContactRequest) {
	_, company, email, contactName, phone, address, taxID, active := contactFields(c)
	*company = req.CompanyName
	*email = req.Email
	*contactName = req.ContactName
	*phone = req.Phone
	*address = req.Address
	*taxID = req.TaxID
	*active = true
}

func (s *contactService[T]) toResponse(c *T) *dto.ContactResponse {
	id, company, email, contactName, phone, address, taxID, active := contactFields(c)
	return &dto.ContactResponse{
		ID:          id.String(),
		CompanyName: *company,
		ContactName: *contactName,
		Email:       *email,
		Phone:       *phone,
		Address:     *address,
		TaxID:       *taxID,
		Active:      *active,
	}
}

func (s *contactService[T]) Create(ctx context.Context, req dto.ContactRequest) (*dto.ContactResponse, error) {
	// Pre-flight duplicate check; the unique index stays the last line of
	// defence under concurrent creates.
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Conflict("a " + s.label + " with this email already exists")
	}

	var c T
	s.apply(&c, req)
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, translateDBErr(err, s.label+" not found")
	}
	return s.toResponse(&c), nil
}

func (s *contactService[T]) GetByID(ctx context.Context, id uuid.UUID) (*dto.ContactResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound(s.label + " not found")
	}
	return s.toResponse(c), nil
}

func (s *contactService[T]) List(ctx context.Context) ([]dto.ContactResponse, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(contacts))
	for i := range contacts {
		out = append(out, *s.toResponse(&contacts[i]))
	}
	return out, nil
}

func (s *contactService[T]) Update(ctx context.Context, id uuid.UUID, req dto.ContactRequest) (*dto.ContactResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound(s.label + " not found")
	}
	_, _, email, _, _, _, _, _ := contactFields(c)
	if *email != req.Email {
		if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
			return nil, apierror.Conflict("a " + s.label + " with this email already exists")
		}
	}
	s.apply(c, req)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, translateDBErr(err, s.label+" not found")
	}
	return s.toResponse(c), nil
}

func (s *contactService[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound(s.label + " not found")
	}
	return s.repo.SoftDelete(ctx, id)
}
