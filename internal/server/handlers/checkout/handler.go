package checkout

import (
	"errors"
	"fmt"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/vigyat/agrostore/internal/catalog"
	"github.com/vigyat/agrostore/internal/collection"
	"github.com/vigyat/agrostore/internal/server/validation"
	"github.com/vigyat/agrostore/internal/storage"
	"go.uber.org/zap"
)

type Handler struct {
	catalog *catalog.Catalog

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(cat *catalog.Catalog, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		catalog: cat,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/checkout")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
}

//	@Summary		Place an order
//	@Description	Prices the cart from the catalog and stores a pending cash-on-delivery order.
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			order	body		POSTRequest	true	"Cart and customer"
//	@Success		200		{object}	map[string]any
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		500		{object}	fiberfx.ErrorResponse
//	@Router			/checkout [post]
//
// Place an order.
func (h *Handler) post(c *fiber.Ctx, req *POSTRequest) error {
	order, err := h.catalog.PlaceOrder(c.Context(), catalog.OrderDraft{
		Items: lo.Map(req.Items, func(item CartItem, _ int) catalog.CartItem {
			return catalog.CartItem{ProductID: item.ID, Quantity: item.Quantity}
		}),
		Customer: catalog.Customer{
			Name:    req.Customer.Name,
			Contact: req.Customer.Contact,
			Village: req.Customer.Village,
			Address: req.Customer.Address,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to place order: %w", err)
	}

	return c.JSON(order)
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, collection.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrUnavailable):
		h.logger.Error("storage failure", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, storage.ErrUnavailable.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
