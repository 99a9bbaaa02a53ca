package storage

import "errors"

var (
	ErrUnavailable   = errors.New("storage backend unavailable")
	ErrUnknownDriver = errors.New("unknown storage driver")
)
