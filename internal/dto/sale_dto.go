package dto

import "github.com/shopspring/decimal"

type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity"   validate:"required"`
}

type CreateSaleRequest struct {
	ClientID *string           `json:"client_id" validate:"omitempty,uuid"`
	Items    []SaleItemRequest `json:"items"     validate:"required,min=1,dive"`
	Notes    *string           `json:"notes"`
}

type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type SaleResponse struct {
	ID        string             `json:"id"`
	ClientID  *string            `json:"client_id"`
	Items     []SaleItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	Status    string             `json:"status"`
	CreatedAt string             `json:"created_at"`
}

type SaleFilter struct {
	Status string `form:"status"`
	Date   string `form:"date"` // YYYY-MM-DD
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
