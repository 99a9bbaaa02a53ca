package assets

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/vigyat/agrostore/internal/assets"
	"github.com/vigyat/agrostore/internal/auth"
	"github.com/vigyat/agrostore/internal/storage"
	"go.uber.org/zap"
)

const formField = "file"

type Handler struct {
	store *assets.Store

	requireAdmin fiber.Handler
	logger       *zap.Logger
}

func NewHandler(store *assets.Store, verifier auth.SessionVerifier, logger *zap.Logger) handler.Handler {
	return &Handler{
		store: store,

		requireAdmin: auth.RequireAdmin(verifier),
		logger:       logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r.Post("/upload", h.errorsHandler, h.requireAdmin, h.upload)
	r.Get("/images/:id", h.errorsHandler, h.image)
}

//	@Summary		Upload an image
//	@Description	Stores a single file of at most 1 MiB and returns its URL.
//	@Tags			assets
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"Image"
//	@Success		200		{object}	UploadResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		401		{object}	fiberfx.ErrorResponse
//	@Security		AdminCookie
//	@Router			/upload [post]
//
// Upload an image.
func (h *Handler) upload(c *fiber.Ctx) error {
	header, err := c.FormFile(formField)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	if header.Size > h.store.MaxSize() {
		return fmt.Errorf("%w: %d bytes", assets.ErrPayloadTooLarge, header.Size)
	}

	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	// one extra byte lets the store detect an oversized stream
	payload, err := io.ReadAll(io.LimitReader(file, h.store.MaxSize()+1))
	if err != nil {
		return fmt.Errorf("failed to read upload: %w", err)
	}

	url, err := h.store.Upload(c.Context(), payload, header.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return fmt.Errorf("failed to store upload: %w", err)
	}

	return c.JSON(UploadResponse{URL: url})
}

//	@Summary		Get an image
//	@Tags			assets
//	@Produce		octet-stream
//	@Param			id	path		string	true	"Image ID"
//	@Success		200	{file}		binary
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/images/{id} [get]
//
// Get an image.
func (h *Handler) image(c *fiber.Ctx) error {
	asset, err := h.store.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fmt.Errorf("failed to get image: %w", err)
	}

	c.Set(fiber.HeaderContentType, asset.MediaType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	return c.Send(asset.Data)
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, assets.ErrPayloadTooLarge), errors.Is(err, assets.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, assets.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrUnavailable):
		h.logger.Error("storage failure", zap.String("path", c.Path()), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, storage.ErrUnavailable.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
