package catalog

import (
	"context"
	"fmt"
	"math"

	"github.com/samber/lo"
	"github.com/vigyat/agrostore/internal/collection"
	"go.uber.org/zap"
)

type CartItem struct {
	ProductID string
	Quantity  int
}

type Customer struct {
	Name    string
	Contact string
	Village string
	Address string
}

type OrderDraft struct {
	Items    []CartItem
	Customer Customer
}

// PlaceOrder prices the cart from the product catalog and stores a pending
// cash-on-delivery order. Prices sent by the client are never trusted.
func (c *Catalog) PlaceOrder(ctx context.Context, draft OrderDraft) (collection.Record, error) {
	if len(draft.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", collection.ErrValidation)
	}

	// repeated lines for one product are merged, keeping first-seen order
	quantities := map[string]int{}
	ids := lo.Uniq(lo.Map(draft.Items, func(item CartItem, _ int) string {
		quantities[item.ProductID] += item.Quantity
		return item.ProductID
	}))

	items := make([]any, 0, len(ids))
	total := 0.0
	for _, id := range ids {
		quantity := quantities[id]
		if quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity for %s must be positive", collection.ErrValidation, id)
		}

		product, err := c.Products().Get(ctx, id)
		if collection.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, id)
		}
		if err != nil {
			return nil, err
		}

		if inStock, ok := product["inStock"].(bool); ok && !inStock {
			return nil, fmt.Errorf("%w: %s", ErrOutOfStock, product.String("name"))
		}

		price := product.Number("price")
		line := map[string]any{
			"id":       id,
			"name":     product.String("name"),
			"price":    price,
			"quantity": quantity,
		}
		if image := product.String("image"); image != "" {
			line["image"] = image
		}

		items = append(items, line)
		total += price * float64(quantity)
	}

	order, err := c.Orders().Create(ctx, map[string]any{
		"items": items,
		"customer": map[string]any{
			"name":    draft.Customer.Name,
			"contact": draft.Customer.Contact,
			"village": draft.Customer.Village,
			"address": draft.Customer.Address,
		},
		"total":  math.Round(total*100) / 100,
		"status": OrderStatusPending,
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("order placed",
		zap.String("id", order.ID()),
		zap.Int("lines", len(items)),
		zap.Float64("total", order.Number("total")),
	)
	return order, nil
}
