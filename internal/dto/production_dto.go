package dto

import "github.com/shopspring/decimal"

// ─── BOM ─────────────────────────────────────────────────────────────────────

type BomComponentRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity"   validate:"required"`
	Unit      string          `json:"unit"`
}

type CreateBomRequest struct {
	Name           string                `json:"name"             validate:"required,min=2,max=120"`
	FinalProductID string                `json:"final_product_id" validate:"required,uuid"`
	Components     []BomComponentRequest `json:"components"       validate:"required,min=1,dive"`
}

type BomComponentResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
}

type BomResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	FinalProductID string                 `json:"final_product_id"`
	Components     []BomComponentResponse `json:"components"`
}

// ─── Production orders ───────────────────────────────────────────────────────

type CreateProductionOrderRequest struct {
	ProductID   string          `json:"product_id"   validate:"required,uuid"`
	BomID       *string         `json:"bom_id"       validate:"omitempty,uuid"`
	Quantity    decimal.Decimal `json:"quantity"     validate:"required"`
	Priority    string          `json:"priority"     validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	StartDate   *string         `json:"start_date"`   // YYYY-MM-DD
	ExpectedEnd *string         `json:"expected_end"` // YYYY-MM-DD
}

type UpdateProductionOrderRequest struct {
	Status      *string          `json:"status"       validate:"omitempty,oneof=PLANNED IN_PROGRESS COMPLETED CANCELLED"`
	Priority    *string          `json:"priority"     validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	Quantity    *decimal.Decimal `json:"quantity"`
	StartDate   *string          `json:"start_date"`
	ExpectedEnd *string          `json:"expected_end"`
}

type ProductionOrderFilter struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type ProductionOrderResponse struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	BomID       *string         `json:"bom_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Status      string          `json:"status"`
	Priority    string          `json:"priority"`
	StartDate   *string         `json:"start_date"`
	ExpectedEnd *string         `json:"expected_end"`
	CreatedAt   string          `json:"created_at"`
}

type ProductionOrderListResponse struct {
	Data  []ProductionOrderResponse `json:"data"`
	Total int64                     `json:"total"`
	Page  int                       `json:"page"`
	Limit int                       `json:"limit"`
}
