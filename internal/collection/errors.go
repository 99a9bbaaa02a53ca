package collection

import (
	"errors"

	"github.com/vigyat/agrostore/internal/storage"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation failed")

	ErrBackendUnavailable = storage.ErrUnavailable
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
