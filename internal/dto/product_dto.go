package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	SKU            string           `json:"sku"              validate:"omitempty,min=3,max=40"`
	Name           string           `json:"name"             validate:"required,min=2,max=120"`
	Description    *string          `json:"description"`
	Category       string           `json:"category"`
	Unit           string           `json:"unit"`
	CostPrice      decimal.Decimal  `json:"cost_price"       validate:"required"`
	SellPrice      decimal.Decimal  `json:"sell_price"       validate:"required"`
	QtyOnHand      decimal.Decimal  `json:"qty_on_hand"      validate:"min=0"`
	MinQty         *decimal.Decimal `json:"min_qty"          validate:"omitempty,min=0"`
	IsRawMaterial  bool             `json:"is_raw_material"`
	IsFinishedGood bool             `json:"is_finished_good"`
}

type UpdateProductRequest struct {
	Name           *string          `json:"name"             validate:"omitempty,min=2,max=120"`
	Description    *string          `json:"description"`
	Category       *string          `json:"category"`
	Unit           *string          `json:"unit"`
	CostPrice      *decimal.Decimal `json:"cost_price"`
	SellPrice      *decimal.Decimal `json:"sell_price"`
	MinQty         *decimal.Decimal `json:"min_qty"          validate:"omitempty,min=0"`
	IsRawMaterial  *bool            `json:"is_raw_material"`
	IsFinishedGood *bool            `json:"is_finished_good"`
}

type AdjustStockRequest struct {
	Delta  decimal.Decimal `json:"delta"  validate:"required"`
	Reason string          `json:"reason" validate:"required,min=3"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductFilter struct {
	SKU      string `form:"sku"`
	Name     string `form:"name"`
	Category string `form:"category"`
	Active   string `form:"active"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID             string           `json:"id"`
	SKU            string           `json:"sku"`
	Name           string           `json:"name"`
	Description    *string          `json:"description"`
	Category       string           `json:"category"`
	Unit           string           `json:"unit"`
	CostPrice      decimal.Decimal  `json:"cost_price"`
	SellPrice      decimal.Decimal  `json:"sell_price"`
	QtyOnHand      decimal.Decimal  `json:"qty_on_hand"`
	MinQty         *decimal.Decimal `json:"min_qty"`
	Status         string           `json:"status"` // out_of_stock | low_stock | in_stock
	IsRawMaterial  bool             `json:"is_raw_material"`
	IsFinishedGood bool             `json:"is_finished_good"`
	Active         bool             `json:"active"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
