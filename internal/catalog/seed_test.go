package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigyat/agrostore/internal/catalog"
)

func TestCatalog_Seed(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)

	existing, err := c.Products().Create(ctx, map[string]any{"name": "Own product", "price": 10})
	require.NoError(t, err)

	require.NoError(t, c.Seed(ctx))
	require.NoError(t, c.Seed(ctx))

	products, err := c.Products().List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, existing.ID(), products[0].ID())

	for _, name := range []string{catalog.EntityCrops, catalog.EntityArticles} {
		col, _ := c.Collection(name)
		records, listErr := col.List(ctx)
		require.NoError(t, listErr)
		assert.Len(t, records, 2, name)
	}

	sliders, _ := c.Collection(catalog.EntitySliders)
	records, err := sliders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCatalog_SeedProducts(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)

	require.NoError(t, c.Seed(ctx))

	products, err := c.Products().List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)

	prices := []float64{products[0].Number("price"), products[1].Number("price")}
	assert.ElementsMatch(t, []float64{850, 320}, prices)
}
