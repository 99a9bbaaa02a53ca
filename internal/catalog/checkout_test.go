package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigyat/agrostore/internal/catalog"
	"github.com/vigyat/agrostore/internal/collection"
	"github.com/vigyat/agrostore/internal/storage/storagetest"
	"go.uber.org/zap/zaptest"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	backend, _ := storagetest.NewRedis(t)
	return catalog.New(backend, zaptest.NewLogger(t))
}

func TestCatalog_Collections(t *testing.T) {
	c := newCatalog(t)

	for _, schema := range catalog.Schemas() {
		col, ok := c.Collection(schema.Name)
		require.True(t, ok, schema.Name)
		assert.Equal(t, schema.Key, col.Schema().Key)
	}
	assert.Len(t, c.All(), len(catalog.Schemas()))

	_, ok := c.Collection("tractors")
	assert.False(t, ok)
}

func TestCatalog_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)

	npk, err := c.Products().Create(ctx, map[string]any{"name": "NPK 19:19:19", "price": 850, "image": "/npk.png"})
	require.NoError(t, err)
	urea, err := c.Products().Create(ctx, map[string]any{"name": "Urea", "price": 266.5})
	require.NoError(t, err)

	order, err := c.PlaceOrder(ctx, catalog.OrderDraft{
		Items: []catalog.CartItem{
			{ProductID: npk.ID(), Quantity: 2},
			{ProductID: urea.ID(), Quantity: 1},
			{ProductID: npk.ID(), Quantity: 1},
		},
		Customer: catalog.Customer{Name: "Ravi", Contact: "9876543210", Village: "Nandgaon", Address: "Main road"},
	})
	require.NoError(t, err)

	assert.Equal(t, catalog.OrderStatusPending, order["status"])
	assert.InDelta(t, 850*3+266.5, order["total"], 0.001)
	assert.Equal(t, []any{
		map[string]any{"id": npk.ID(), "name": "NPK 19:19:19", "price": float64(850), "quantity": float64(3), "image": "/npk.png"},
		map[string]any{"id": urea.ID(), "name": "Urea", "price": 266.5, "quantity": float64(1)},
	}, order["items"])
	assert.Equal(t, "Nandgaon", order["customer"].(map[string]any)["village"])

	stored, err := c.Orders().Get(ctx, order.ID())
	require.NoError(t, err)
	assert.Equal(t, order, stored)
}

func TestCatalog_PlaceOrderRejects(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)

	soldOut, err := c.Products().Create(ctx, map[string]any{"name": "DAP", "price": 1350, "inStock": false})
	require.NoError(t, err)
	ok, err := c.Products().Create(ctx, map[string]any{"name": "Urea", "price": 266})
	require.NoError(t, err)

	customer := catalog.Customer{Name: "Ravi", Contact: "1", Village: "v", Address: "a"}

	cases := []struct {
		name  string
		items []catalog.CartItem
		want  error
	}{
		{"empty cart", nil, collection.ErrValidation},
		{"unknown product", []catalog.CartItem{{ProductID: "nope", Quantity: 1}}, catalog.ErrUnknownProduct},
		{"out of stock", []catalog.CartItem{{ProductID: soldOut.ID(), Quantity: 1}}, catalog.ErrOutOfStock},
		{"zero quantity", []catalog.CartItem{{ProductID: ok.ID(), Quantity: 0}}, collection.ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, placeErr := c.PlaceOrder(ctx, catalog.OrderDraft{Items: tc.items, Customer: customer})
			require.ErrorIs(t, placeErr, tc.want)
			require.ErrorIs(t, placeErr, collection.ErrValidation)
		})
	}

	orders, err := c.Orders().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
