package service

import (
	"context"
	"strings"
	"testing"

	"github.com/zorguiala/domdom/internal/apierror"
	"github.com/zorguiala/domdom/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_GeneratesSKUWhenOmitted(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:      "Widget Pro 3000",
		CostPrice: dec("4"),
		SellPrice: dec("10"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.SKU, "WIDGETPR-"), "got %q", resp.SKU)
	assert.Len(t, resp.SKU, len("WIDGETPR-")+6)
	assert.True(t, resp.Active)
	assert.Equal(t, "general", resp.Category)
	assert.Equal(t, "unit", resp.Unit)
}

func TestCreateProduct_DuplicateSKURejected(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		SKU:       "FLOUR-01",
		Name:      "Flour",
		CostPrice: dec("1"),
		SellPrice: dec("2"),
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateProductRequest{
		SKU:       "FLOUR-01",
		Name:      "Flour again",
		CostPrice: dec("1"),
		SellPrice: dec("2"),
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestCreateProduct_NegativeAmountsRejected(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	cases := []dto.CreateProductRequest{
		{Name: "Bad cost", CostPrice: dec("-1"), SellPrice: dec("2")},
		{Name: "Bad sell", CostPrice: dec("1"), SellPrice: dec("-2")},
		{Name: "Bad qty", CostPrice: dec("1"), SellPrice: dec("2"), QtyOnHand: dec("-3")},
		{Name: "Bad min", CostPrice: dec("1"), SellPrice: dec("2"), MinQty: decPtr("-1")},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), req)
		require.Error(t, err, req.Name)
		assert.Equal(t, apierror.KindValidation, apierror.KindOf(err), req.Name)
	}
}

func TestProductResponse_StatusDerivedFromQuantities(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)

	out := seedProduct(repo, "Out of stock", "0")
	low := seedProduct(repo, "Low stock", "3")
	low.MinQty = decPtr("5")
	in := seedProduct(repo, "In stock", "50")
	in.MinQty = decPtr("5")

	resp, err := svc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, StockOut, resp.Status)

	resp, err = svc.GetByID(context.Background(), low.ID)
	require.NoError(t, err)
	assert.Equal(t, StockLow, resp.Status)

	resp, err = svc.GetByID(context.Background(), in.ID)
	require.NoError(t, err)
	assert.Equal(t, StockIn, resp.Status)
}

func TestUpdateProduct(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)
	p := seedProduct(repo, "Old name", "10")

	name := "New name"
	sell := dec("15.50")
	resp, err := svc.Update(context.Background(), p.ID, dto.UpdateProductRequest{
		Name:      &name,
		SellPrice: &sell,
	})
	require.NoError(t, err)
	assert.Equal(t, "New name", resp.Name)
	assert.Equal(t, "15.5", resp.SellPrice.String())
	// Untouched fields survive a partial update.
	assert.Equal(t, p.SKU, resp.SKU)

	bad := dec("-1")
	_, err = svc.Update(context.Background(), p.ID, dto.UpdateProductRequest{SellPrice: &bad})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))

	stored, err := svc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "15.5", stored.SellPrice.String())
}

func TestDeleteProduct_ReferencedRejected(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)
	p := seedProduct(repo, "Flour", "10")
	repo.references[p.ID] = 3

	err := svc.Delete(context.Background(), p.ID)
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))

	stored, err := svc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, stored.Active)
}

func TestDeleteProduct_SoftDeletesUnreferenced(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)
	p := seedProduct(repo, "Flour", "10")

	require.NoError(t, svc.Delete(context.Background(), p.ID))

	stored, err := svc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)

	list, err := svc.List(context.Background(), dto.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, list.Data)
}
