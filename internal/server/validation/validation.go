package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validatable is implemented by requests with checks beyond struct tags.
type Validatable interface {
	Validate() error
}

// BodyParserValidator parses the request body into out and validates it.
// Failures are returned as 400 errors.
func BodyParserValidator(c *fiber.Ctx, v *validator.Validate, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("failed to parse request: %s", err))
	}

	if err := v.Struct(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("failed to validate request: %s", err))
	}

	if req, ok := out.(Validatable); ok {
		if err := req.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	return nil
}

// DecorateWithBodyEx parses and validates a T from the body before calling next.
func DecorateWithBodyEx[T any](v *validator.Validate, next func(*fiber.Ctx, *T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if err := BodyParserValidator(c, v, req); err != nil {
			return err
		}

		return next(c, req)
	}
}
