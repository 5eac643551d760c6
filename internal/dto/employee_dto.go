package dto

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	Name       string          `json:"name"       validate:"required,min=2,max=100"`
	Email      string          `json:"email"      validate:"required,email"`
	Position   string          `json:"position"   validate:"required,min=2,max=100"`
	Department *string         `json:"department"`
	HireDate   string          `json:"hire_date"  validate:"required"` // YYYY-MM-DD
	Salary     decimal.Decimal `json:"salary"     validate:"required"`
}

type UpdateEmployeeRequest struct {
	Name       *string          `json:"name"       validate:"omitempty,min=2,max=100"`
	Email      *string          `json:"email"      validate:"omitempty,email"`
	Position   *string          `json:"position"   validate:"omitempty,min=2,max=100"`
	Department *string          `json:"department"`
	Salary     *decimal.Decimal `json:"salary"`
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Position   string          `json:"position"`
	Department *string         `json:"department"`
	HireDate   string          `json:"hire_date"`
	Salary     decimal.Decimal `json:"salary"`
	Active     bool            `json:"active"`
}
