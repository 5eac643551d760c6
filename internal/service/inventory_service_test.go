package service

import (
	"context"
	"testing"

	"github.com/zorguiala/domdom/internal/apierror"
	"github.com/zorguiala/domdom/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustStock_AppliesDeltaAndLogsMovement(t *testing.T) {
	productRepo := newStubProductRepo()
	movementRepo := &stubMovementRepo{}
	svc := NewInventoryService(productRepo, movementRepo, nil, "")
	p := seedProduct(productRepo, "Sugar", "10")

	resp, err := svc.AdjustStock(context.Background(), p.ID, dto.AdjustStockRequest{
		Delta:  dec("-4"),
		Reason: "spoilage",
	})
	require.NoError(t, err)
	assert.Equal(t, "6", resp.QtyOnHand.String())
	assert.Equal(t, "6", p.QtyOnHand.String())

	require.Len(t, movementRepo.movements, 1)
	mov := movementRepo.movements[0]
	assert.Equal(t, "adjustment", mov.Type)
	assert.Equal(t, "-4", mov.Quantity.String())
	assert.Equal(t, "10", mov.QtyBefore.String())
	assert.Equal(t, "6", mov.QtyAfter.String())
	assert.Equal(t, "spoilage", mov.Reason)
}

func TestAdjustStock_NegativeResultRejected(t *testing.T) {
	productRepo := newStubProductRepo()
	movementRepo := &stubMovementRepo{}
	svc := NewInventoryService(productRepo, movementRepo, nil, "")
	p := seedProduct(productRepo, "Sugar", "3")

	_, err := svc.AdjustStock(context.Background(), p.ID, dto.AdjustStockRequest{
		Delta:  dec("-4"),
		Reason: "spoilage",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
	assert.Equal(t, "3", p.QtyOnHand.String())
	assert.Empty(t, movementRepo.movements)
	// Draining exactly to zero is allowed.
	resp, err := svc.AdjustStock(context.Background(), p.ID, dto.AdjustStockRequest{
		Delta:  dec("-3"),
		Reason: "spoilage",
	})
	require.NoError(t, err)
	assert.Equal(t, "0", resp.QtyOnHand.String())
	assert.Equal(t, StockOut, resp.Status)
}

func TestListAlerts_ReportsAtOrBelowThreshold(t *testing.T) {
	productRepo := newStubProductRepo()
	svc := NewInventoryService(productRepo, &stubMovementRepo{}, nil, "")

	low := seedProduct(productRepo, "Low", "5")
	low.MinQty = decPtr("5")
	ok := seedProduct(productRepo, "Fine", "50")
	ok.MinQty = decPtr("5")
	seedProduct(productRepo, "No threshold", "0")

	alerts, err := svc.ListAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, low.ID.String(), alerts[0].ProductID)
	assert.Equal(t, StockLow, alerts[0].Status)
	assert.Equal(t, "5", alerts[0].MinQty.String())
}
