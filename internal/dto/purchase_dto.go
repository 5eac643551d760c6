package dto

import "github.com/shopspring/decimal"

type PurchaseItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity"   validate:"required"`
	UnitCost  decimal.Decimal `json:"unit_cost"  validate:"required"`
}

type CreatePurchaseRequest struct {
	SupplierID string                `json:"supplier_id" validate:"required,uuid"`
	Items      []PurchaseItemRequest `json:"items"       validate:"required,min=1,dive"`
	Notes      *string               `json:"notes"`
}

type UpdatePurchaseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT ORDERED RECEIVED CANCELLED"`
}

type PurchaseItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type PurchaseResponse struct {
	ID         string                 `json:"id"`
	SupplierID string                 `json:"supplier_id"`
	Items      []PurchaseItemResponse `json:"items"`
	Total      decimal.Decimal        `json:"total"`
	Status     string                 `json:"status"`
	ReceivedAt *string                `json:"received_at,omitempty"`
	CreatedAt  string                 `json:"created_at"`
}

type PurchaseFilter struct {
	Status     string `form:"status"`
	SupplierID string `form:"supplier_id"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type PurchaseListResponse struct {
	Data  []PurchaseResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
