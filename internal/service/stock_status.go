package service

import (
	"github.com/shopspring/decimal"
)

// Stock status values derived from a product's quantity against its minimum
// threshold. Never persisted; recomputed on every read.
const (
	StockOut = "out_of_stock"
	StockLow = "low_stock"
	StockIn  = "in_stock"
)

// ClassifyStock derives the stock status for a quantity/threshold pair.
// The zero-quantity check wins over the threshold check even when the
// threshold itself is zero.
func ClassifyStock(qtyOnHand decimal.Decimal, minQty *decimal.Decimal) string {
	if qtyOnHand.IsZero() {
		return StockOut
	}
	if minQty != nil && qtyOnHand.LessThanOrEqual(*minQty) {
		return StockLow
	}
	return StockIn
}
