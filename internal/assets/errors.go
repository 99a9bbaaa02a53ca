package assets

import "errors"

var (
	ErrNotFound        = errors.New("asset not found")
	ErrValidation      = errors.New("invalid asset")
	ErrPayloadTooLarge = errors.New("payload too large")
)
