// Package storagetest provides throwaway storage backends for tests.
package storagetest

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/vigyat/agrostore/internal/storage"
	"github.com/vigyat/agrostore/pkg/badgerfx"
	"go.uber.org/zap/zaptest"
)

// NewRedis returns a backend talking to an in-process miniredis server along
// with the server itself, so tests can inspect keys or inject failures.
func NewRedis(t testing.TB) (storage.Backend, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	//nolint:exhaustruct //test client
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return storage.NewRedisBackend(client, zaptest.NewLogger(t)), mr
}

// NewBadger returns a backend on an in-memory badger database.
func NewBadger(t testing.TB) storage.Backend {
	t.Helper()

	logger := zaptest.NewLogger(t)

	db, err := badgerfx.New(badgerfx.Config{InMemory: true}, logger)
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return storage.NewBadgerBackend(db, logger)
}

// Each runs fn once per backend driver as a subtest.
func Each(t *testing.T, fn func(t *testing.T, backend storage.Backend)) {
	t.Helper()

	t.Run(string(storage.DriverRedis), func(t *testing.T) {
		backend, _ := NewRedis(t)
		fn(t, backend)
	})
	t.Run(string(storage.DriverBadger), func(t *testing.T) {
		fn(t, NewBadger(t))
	})
}
