package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/zorguiala/domdom/internal/apierror"
	"github.com/zorguiala/domdom/internal/dto"
	"github.com/zorguiala/domdom/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductionFixture() (ProductionService, *stubProductionRepo, *stubProductRepo, *stubMovementRepo) {
	orderRepo := newStubProductionRepo()
	productRepo := newStubProductRepo()
	movementRepo := &stubMovementRepo{}
	svc := NewProductionService(orderRepo, productRepo, newStubBomRepo(), movementRepo)
	return svc, orderRepo, productRepo, movementRepo
}

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "PO-000001", FormatOrderNumber(1))
	assert.Equal(t, "PO-000042", FormatOrderNumber(42))
	assert.Equal(t, "PO-123456", FormatOrderNumber(123456))
	// Numbers beyond six digits widen rather than wrap.
	assert.Equal(t, "PO-1000000", FormatOrderNumber(1000000))
}

func TestCreateOrder_SequentialNumbers(t *testing.T) {
	svc, _, productRepo, _ := newProductionFixture()
	product := seedProduct(productRepo, "widget", "0")

	for i := 1; i <= 3; i++ {
		resp, err := svc.CreateOrder(context.Background(), dto.CreateProductionOrderRequest{
			ProductID: product.ID.String(),
			Quantity:  dec("10"),
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("PO-%06d", i), resp.OrderNumber)
		assert.Equal(t, model.OrderPlanned, resp.Status)
		assert.Equal(t, model.PriorityMedium, resp.Priority)
	}
}

func TestCreateOrder_ConcurrentNumbersAreDistinct(t *testing.T) {
	svc, _, productRepo, _ := newProductionFixture()
	product := seedProduct(productRepo, "widget", "0")

	const n = 20
	var wg sync.WaitGroup
	numbers := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := svc.CreateOrder(context.Background(), dto.CreateProductionOrderRequest{
				ProductID: product.ID.String(),
				Quantity:  dec("1"),
			})
			if err == nil {
				numbers <- resp.OrderNumber
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool)
	for num := range numbers {
		assert.False(t, seen[num], "duplicate order number %s", num)
		seen[num] = true
	}
	assert.Len(t, seen, n)
}

func TestCreateOrder_BomMustProduceProduct(t *testing.T) {
	orderRepo := newStubProductionRepo()
	productRepo := newStubProductRepo()
	bomRepo := newStubBomRepo()
	svc := NewProductionService(orderRepo, productRepo, bomRepo, &stubMovementRepo{})

	product := seedProduct(productRepo, "widget", "0")
	other := seedProduct(productRepo, "gadget", "0")
	bom := &model.BillOfMaterials{ID: uuid.New(), Name: "gadget bom", FinalProductID: other.ID}
	bomRepo.boms[bom.ID] = bom

	bomID := bom.ID.String()
	_, err := svc.CreateOrder(context.Background(), dto.CreateProductionOrderRequest{
		ProductID: product.ID.String(),
		BomID:     &bomID,
		Quantity:  dec("5"),
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
}

func TestUpdateOrder_CompletionBooksStock(t *testing.T) {
	svc, _, productRepo, movementRepo := newProductionFixture()
	product := seedProduct(productRepo, "widget", "2")

	created, err := svc.CreateOrder(context.Background(), dto.CreateProductionOrderRequest{
		ProductID: product.ID.String(),
		Quantity:  dec("10"),
	})
	require.NoError(t, err)

	completed := model.OrderCompleted
	resp, err := svc.UpdateOrder(context.Background(), uuid.MustParse(created.ID), dto.UpdateProductionOrderRequest{
		Status: &completed,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderCompleted, resp.Status)

	assert.Equal(t, "12", product.QtyOnHand.String())
	require.Len(t, movementRepo.movements, 1)
	mov := movementRepo.movements[0]
	assert.Equal(t, "production", mov.Type)
	assert.Equal(t, "2", mov.QtyBefore.String())
	assert.Equal(t, "12", mov.QtyAfter.String())
	require.NotNil(t, mov.ReferenceID)
	assert.Equal(t, created.ID, mov.ReferenceID.String())
}

func TestUpdateOrder_TerminalStatusesLocked(t *testing.T) {
	svc, _, productRepo, _ := newProductionFixture()
	product := seedProduct(productRepo, "widget", "0")

	created, err := svc.CreateOrder(context.Background(), dto.CreateProductionOrderRequest{
		ProductID: product.ID.String(),
		Quantity:  dec("1"),
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	cancelled := model.OrderCancelled
	_, err = svc.UpdateOrder(context.Background(), id, dto.UpdateProductionOrderRequest{Status: &cancelled})
	require.NoError(t, err)

	planned := model.OrderPlanned
	_, err = svc.UpdateOrder(context.Background(), id, dto.UpdateProductionOrderRequest{Status: &planned})
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
}

func TestDeleteOrder_InProgressRejected(t *testing.T) {
	svc, _, productRepo, _ := newProductionFixture()
	product := seedProduct(productRepo, "widget", "0")

	created, err := svc.CreateOrder(context.Background(), dto.CreateProductionOrderRequest{
		ProductID: product.ID.String(),
		Quantity:  dec("1"),
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	inProgress := model.OrderInProgress
	_, err = svc.UpdateOrder(context.Background(), id, dto.UpdateProductionOrderRequest{Status: &inProgress})
	require.NoError(t, err)

	err = svc.DeleteOrder(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))

	cancelled := model.OrderCancelled
	_, err = svc.UpdateOrder(context.Background(), id, dto.UpdateProductionOrderRequest{Status: &cancelled})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteOrder(context.Background(), id))
}
