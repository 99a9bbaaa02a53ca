package server

import (
	"errors"

	"github.com/go-core-fx/fiberfx"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const msgPayloadTooLarge = "payload too large"

// NewErrorHandler renders errors as JSON. Bodies over the transport limit are
// rejected before routing with 413; they are reported as 400 like any other
// oversized upload.
func NewErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	jsonHandler := fiberfx.NewJSONErrorHandler(logger)

	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code == fiber.StatusRequestEntityTooLarge {
			err = fiber.NewError(fiber.StatusBadRequest, msgPayloadTooLarge)
		}

		return jsonHandler(c, err)
	}
}
