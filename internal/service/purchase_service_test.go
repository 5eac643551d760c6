package service

import (
	"context"
	"testing"

	"github.com/zorguiala/domdom/internal/apierror"
	"github.com/zorguiala/domdom/internal/dto"
	"github.com/zorguiala/domdom/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purchaseFixture struct {
	svc          PurchaseService
	purchaseRepo *stubPurchaseRepo
	supplierRepo *stubSupplierRepo
	productRepo  *stubProductRepo
	movementRepo *stubMovementRepo
	supplier     *model.Supplier
}

func newPurchaseFixture() *purchaseFixture {
	f := &purchaseFixture{
		purchaseRepo: newStubPurchaseRepo(),
		supplierRepo: newStubSupplierRepo(),
		productRepo:  newStubProductRepo(),
		movementRepo: &stubMovementRepo{},
	}
	f.svc = NewPurchaseService(f.purchaseRepo, f.supplierRepo, f.productRepo, f.movementRepo)
	f.supplier = &model.Supplier{
		ID:          uuid.New(),
		CompanyName: "Grain Co",
		Email:       "orders@grainco.example",
		Active:      true,
	}
	f.supplierRepo.suppliers[f.supplier.ID] = f.supplier
	return f
}

func TestCreatePurchase_TotalsFromLines(t *testing.T) {
	f := newPurchaseFixture()
	flour := seedProduct(f.productRepo, "Flour", "0")

	resp, err := f.svc.Create(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: f.supplier.ID.String(),
		Items: []dto.PurchaseItemRequest{
			{ProductID: flour.ID.String(), Quantity: dec("100"), UnitCost: dec("0.80")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, model.PurchaseDraft, resp.Status)
	assert.Equal(t, "80", resp.Total.String())
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "80", resp.Items[0].Subtotal.String())
	// Ordering never touches stock; only receiving does.
	assert.Equal(t, "0", flour.QtyOnHand.String())
}

func TestCreatePurchase_UnknownSupplierRejected(t *testing.T) {
	f := newPurchaseFixture()
	flour := seedProduct(f.productRepo, "Flour", "0")

	_, err := f.svc.Create(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: uuid.NewString(),
		Items: []dto.PurchaseItemRequest{
			{ProductID: flour.ID.String(), Quantity: dec("1"), UnitCost: dec("1")},
		},
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestReceivePurchase_BooksStock(t *testing.T) {
	f := newPurchaseFixture()
	flour := seedProduct(f.productRepo, "Flour", "5")

	created, err := f.svc.Create(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: f.supplier.ID.String(),
		Items: []dto.PurchaseItemRequest{
			{ProductID: flour.ID.String(), Quantity: dec("100"), UnitCost: dec("0.80")},
		},
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	resp, err := f.svc.UpdateStatus(context.Background(), id, dto.UpdatePurchaseStatusRequest{
		Status: model.PurchaseReceived,
	})
	require.NoError(t, err)
	assert.Equal(t, model.PurchaseReceived, resp.Status)
	require.NotNil(t, resp.ReceivedAt)

	assert.Equal(t, "105", flour.QtyOnHand.String())

	require.Len(t, f.movementRepo.movements, 1)
	mov := f.movementRepo.movements[0]
	assert.Equal(t, "purchase", mov.Type)
	assert.Equal(t, "100", mov.Quantity.String())
	assert.Equal(t, "5", mov.QtyBefore.String())
	assert.Equal(t, "105", mov.QtyAfter.String())
	require.NotNil(t, mov.ReferenceID)
	assert.Equal(t, id, *mov.ReferenceID)
}

func TestPurchaseStatus_TerminalStatesLocked(t *testing.T) {
	f := newPurchaseFixture()
	flour := seedProduct(f.productRepo, "Flour", "0")

	created, err := f.svc.Create(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: f.supplier.ID.String(),
		Items: []dto.PurchaseItemRequest{
			{ProductID: flour.ID.String(), Quantity: dec("10"), UnitCost: dec("1")},
		},
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = f.svc.UpdateStatus(context.Background(), id, dto.UpdatePurchaseStatusRequest{
		Status: model.PurchaseReceived,
	})
	require.NoError(t, err)

	// Receiving twice would double-book stock.
	_, err = f.svc.UpdateStatus(context.Background(), id, dto.UpdatePurchaseStatusRequest{
		Status: model.PurchaseReceived,
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
	assert.Equal(t, "10", flour.QtyOnHand.String())

	_, err = f.svc.UpdateStatus(context.Background(), id, dto.UpdatePurchaseStatusRequest{
		Status: model.PurchaseOrdered,
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
}
