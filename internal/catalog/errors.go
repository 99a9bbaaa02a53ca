package catalog

import (
	"fmt"

	"github.com/vigyat/agrostore/internal/collection"
)

var (
	ErrUnknownProduct = fmt.Errorf("%w: unknown product", collection.ErrValidation)
	ErrOutOfStock     = fmt.Errorf("%w: product out of stock", collection.ErrValidation)
)
