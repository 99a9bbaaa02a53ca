package collections

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/vigyat/agrostore/internal/auth"
	"github.com/vigyat/agrostore/internal/catalog"
	"github.com/vigyat/agrostore/internal/collection"
	"github.com/vigyat/agrostore/internal/storage"
	"go.uber.org/zap"
)

// Handler exposes CRUD routes for one entity collection. Reads are public,
// writes require an admin session.
type Handler struct {
	collection *collection.Collection
	// singletonID enables PUT on the collection root as an upsert of this id.
	singletonID string

	requireAdmin fiber.Handler
	logger       *zap.Logger
}

// NewHandlers creates one handler per catalog entity.
func NewHandlers(cat *catalog.Catalog, verifier auth.SessionVerifier, logger *zap.Logger) []handler.Handler {
	requireAdmin := auth.RequireAdmin(verifier)

	handlers := make([]handler.Handler, 0, len(cat.All()))
	for _, col := range cat.All() {
		h := &Handler{
			collection:  col,
			singletonID: "",

			requireAdmin: requireAdmin,
			logger:       logger.With(zap.String("entity", col.Schema().Name)),
		}
		if col.Schema().Name == catalog.EntityStoreInfo {
			h.singletonID = catalog.StoreInfoID
		}
		handlers = append(handlers, h)
	}

	return handlers
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/" + h.collection.Schema().Name)

	r.Use(h.errorsHandler)
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Post("/", h.requireAdmin, h.post)
	r.Put("/:id", h.requireAdmin, h.update)
	r.Patch("/:id", h.requireAdmin, h.update)
	r.Delete("/:id", h.requireAdmin, h.delete)
	r.Delete("/", h.requireAdmin, h.deleteAll)

	if h.singletonID != "" {
		r.Put("/", h.requireAdmin, h.upsert)
	}
}

//	@Summary		List records
//	@Description	Returns every record of the entity, newest first. `q` searches string fields, other parameters filter declared fields by exact value.
//	@Tags			collections
//	@Produce		json
//	@Param			entity	path	string	true	"Entity"	Enums(products, crops, articles, sliders, orders, store-info)
//	@Param			q		query	string	false	"Search term"
//	@Success		200		{array}	Record
//	@Failure		500		{object}	fiberfx.ErrorResponse
//	@Router			/{entity} [get]
//
// List records.
func (h *Handler) list(c *fiber.Ctx) error {
	records, err := h.collection.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	query := h.collection.Schema().QueryFromParams(c.Queries())
	return c.JSON(collection.Filter(records, query))
}

//	@Summary		Get a record
//	@Tags			collections
//	@Produce		json
//	@Param			entity	path		string	true	"Entity"
//	@Param			id		path		string	true	"Record ID"
//	@Success		200		{object}	Record
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/{entity}/{id} [get]
//
// Get a record.
func (h *Handler) get(c *fiber.Ctx) error {
	rec, err := h.collection.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	return c.JSON(rec)
}

//	@Summary		Create a record
//	@Tags			collections
//	@Accept			json
//	@Produce		json
//	@Param			entity	path		string	true	"Entity"
//	@Param			record	body		Record	true	"Record fields"
//	@Success		200		{object}	Record
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		401		{object}	fiberfx.ErrorResponse
//	@Failure		500		{object}	fiberfx.ErrorResponse
//	@Security		AdminCookie
//	@Router			/{entity} [post]
//
// Create a record.
func (h *Handler) post(c *fiber.Ctx) error {
	fields, err := parseFields(c)
	if err != nil {
		return err
	}

	rec, err := h.collection.Create(c.Context(), fields)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}

	return c.JSON(rec)
}

//	@Summary		Update a record
//	@Description	Merges the given fields into the record. PUT and PATCH behave the same.
//	@Tags			collections
//	@Accept			json
//	@Produce		json
//	@Param			entity	path		string	true	"Entity"
//	@Param			id		path		string	true	"Record ID"
//	@Param			record	body		Record	true	"Fields to change"
//	@Success		200		{object}	Record
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		401		{object}	fiberfx.ErrorResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Security		AdminCookie
//	@Router			/{entity}/{id} [patch]
//
// Update a record.
func (h *Handler) update(c *fiber.Ctx) error {
	fields, err := parseFields(c)
	if err != nil {
		return err
	}

	rec, err := h.collection.Update(c.Context(), c.Params("id"), fields)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	return c.JSON(rec)
}

//	@Summary		Save the store information
//	@Tags			collections
//	@Accept			json
//	@Produce		json
//	@Param			record	body		Record	true	"Store information"
//	@Success		200		{object}	Record
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		401		{object}	fiberfx.ErrorResponse
//	@Security		AdminCookie
//	@Router			/store-info [put]
//
// Upsert the singleton record.
func (h *Handler) upsert(c *fiber.Ctx) error {
	fields, err := parseFields(c)
	if err != nil {
		return err
	}

	rec, err := h.collection.Upsert(c.Context(), h.singletonID, fields)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return c.JSON(rec)
}

//	@Summary		Delete a record
//	@Description	Succeeds whether or not the record exists.
//	@Tags			collections
//	@Produce		json
//	@Param			entity	path		string	true	"Entity"
//	@Param			id		path		string	true	"Record ID"
//	@Success		200		{object}	SuccessResponse
//	@Failure		401		{object}	fiberfx.ErrorResponse
//	@Security		AdminCookie
//	@Router			/{entity}/{id} [delete]
//
// Delete a record.
func (h *Handler) delete(c *fiber.Ctx) error {
	if err := h.collection.Delete(c.Context(), c.Params("id")); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return c.JSON(SuccessResponse{Success: true})
}

//	@Summary		Delete every record
//	@Tags			collections
//	@Produce		json
//	@Param			entity	path		string	true	"Entity"
//	@Success		200		{object}	SuccessResponse
//	@Failure		401		{object}	fiberfx.ErrorResponse
//	@Security		AdminCookie
//	@Router			/{entity} [delete]
//
// Delete every record.
func (h *Handler) deleteAll(c *fiber.Ctx) error {
	if err := h.collection.DeleteAll(c.Context()); err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}

	h.logger.Warn("collection cleared")
	return c.JSON(SuccessResponse{Success: true})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, collection.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, collection.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrUnavailable):
		h.logger.Error("storage failure", zap.String("path", c.Path()), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, storage.ErrUnavailable.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}

func parseFields(c *fiber.Ctx) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("failed to parse request: %s", err))
	}
	if fields == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "request body must be a JSON object")
	}

	return fields, nil
}
