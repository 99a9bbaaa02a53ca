package storage

import (
	"context"
	"fmt"
)

// KeyType is the type of value held under a backend key.
type KeyType string

const (
	KeyTypeNone   KeyType = "none"
	KeyTypeSet    KeyType = "set"
	KeyTypeHash   KeyType = "hash"
	KeyTypeString KeyType = "string"
)

// Backend is the minimal key-value surface the storefront relies on: sets of
// ids, flat string hashes per record, and key existence/type checks. There are
// no transactions, secondary indexes or queries.
type Backend interface {
	// SetAdd adds members to the set stored at key.
	SetAdd(ctx context.Context, key string, members ...string) error
	// SetRemove removes members from the set stored at key.
	SetRemove(ctx context.Context, key string, members ...string) error
	// SetMembers returns all members of the set stored at key, in no particular order.
	SetMembers(ctx context.Context, key string) ([]string, error)

	// HashGetAll returns every field of the hash at key. A missing key yields
	// an empty map, not an error.
	HashGetAll(ctx context.Context, key string) (map[string]string, error)
	// HashGetAllBatch fetches many hashes in a single round-trip. The result
	// is aligned with keys; missing hashes are empty maps.
	HashGetAllBatch(ctx context.Context, keys []string) ([]map[string]string, error)
	// HashSet writes fields into the hash at key, keeping fields not mentioned.
	HashSet(ctx context.Context, key string, fields map[string]string) error

	// Delete removes the given keys in a single operation.
	Delete(ctx context.Context, keys ...string) error
	// Exists reports whether key holds any value.
	Exists(ctx context.Context, key string) (bool, error)
	// Type reports the type of value held at key.
	Type(ctx context.Context, key string) (KeyType, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	// Driver names the implementation.
	Driver() Driver
}

func unavailable(op, key string, err error) error {
	return fmt.Errorf("%w: %s %q: %w", ErrUnavailable, op, key, err)
}
