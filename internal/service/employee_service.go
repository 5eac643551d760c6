package service

import (
	"context"
	"time"

	"github.com/zorguiala/domdom/internal/apierror"
	"github.com/zorguiala/domdom/internal/dto"
	"github.com/zorguiala/domdom/internal/model"
	"github.com/zorguiala/domdom/internal/repository"

	"github.com/google/uuid"
)

type EmployeeService interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error)
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type employeeService struct {
	repo repository.EmployeeRepository
}

func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return nil, apierror.ValidationFields(map[string]string{"hire_date": "must be a valid date (YYYY-MM-DD)"})
	}
	if req.Salary.IsNegative() {
		return nil, apierror.ValidationFields(map[string]string{"salary": "must not be negative"})
	}
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Conflict("an employee with this email already exists")
	}

	e := &model.Employee{
		Name:       req.Name,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
		HireDate:   hireDate,
		Salary:     req.Salary,
		Active:     true,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, translateDBErr(err, "employee not found")
	}
	return employeeToResponse(e), nil
}

func (s *employeeService) GetByID(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("employee not found")
	}
	return employeeToResponse(e), nil
}

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, *employeeToResponse(&employees[i]))
	}
	return out, nil
}

func (s *employeeService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("employee not found")
	}
	if req.Email != nil && *req.Email != e.Email {
		if _, err := s.repo.FindByEmail(ctx, *req.Email); err == nil {
			return nil, apierror.Conflict("an employee with this email already exists")
		}
		e.Email = *req.Email
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.Department != nil {
		e.Department = req.Department
	}
	if req.Salary != nil {
		if req.Salary.IsNegative() {
			return nil, apierror.ValidationFields(map[string]string{"salary": "must not be negative"})
		}
		e.Salary = *req.Salary
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, translateDBErr(err, "employee not found")
	}
	return employeeToResponse(e), nil
}

func (s *employeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("employee not found")
	}
	return s.repo.SoftDelete(ctx, id)
}

func employeeToResponse(e *model.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:         e.ID.String(),
		Name:       e.Name,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
		HireDate:   e.HireDate.Format("2006-01-02"),
		Salary:     e.Salary,
		Active:     e.Active,
	}
}
