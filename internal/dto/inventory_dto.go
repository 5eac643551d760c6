package dto

import "github.com/shopspring/decimal"

type MovementFilter struct {
	ProductID string `form:"product_id"`
	Type      string `form:"type"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type MovementResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	QtyBefore   decimal.Decimal `json:"qty_before"`
	QtyAfter    decimal.Decimal `json:"qty_after"`
	Reason      string          `json:"reason"`
	CreatedAt   string          `json:"created_at"`
}

type MovementListResponse struct {
	Data  []MovementResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// StockAlertResponse flags a product at or below its minimum quantity.
type StockAlertResponse struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	QtyOnHand decimal.Decimal `json:"qty_on_hand"`
	MinQty    decimal.Decimal `json:"min_qty"`
	Status    string          `json:"status"` // out_of_stock | low_stock
}
