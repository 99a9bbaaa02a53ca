package storage_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigyat/agrostore/internal/storage"
	"github.com/vigyat/agrostore/internal/storage/storagetest"
)

func TestBackend_Sets(t *testing.T) {
	storagetest.Each(t, func(t *testing.T, backend storage.Backend) {
		ctx := context.Background()

		members, err := backend.SetMembers(ctx, "products")
		require.NoError(t, err)
		assert.Empty(t, members)

		require.NoError(t, backend.SetAdd(ctx, "products", "a", "b"))
		require.NoError(t, backend.SetAdd(ctx, "products", "b", "c"))

		members, err = backend.SetMembers(ctx, "products")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b", "c"}, members)

		require.NoError(t, backend.SetRemove(ctx, "products", "b", "missing"))

		members, err = backend.SetMembers(ctx, "products")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "c"}, members)

		keyType, err := backend.Type(ctx, "products")
		require.NoError(t, err)
		assert.Equal(t, storage.KeyTypeSet, keyType)
	})
}

func TestBackend_Hashes(t *testing.T) {
	storagetest.Each(t, func(t *testing.T, backend storage.Backend) {
		ctx := context.Background()

		fields, err := backend.HashGetAll(ctx, "products:1")
		require.NoError(t, err)
		assert.Empty(t, fields)

		require.NoError(t, backend.HashSet(ctx, "products:1", map[string]string{"name": "Urea", "price": "300"}))
		require.NoError(t, backend.HashSet(ctx, "products:1", map[string]string{"price": "350"}))

		fields, err = backend.HashGetAll(ctx, "products:1")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"name": "Urea", "price": "350"}, fields)

		keyType, err := backend.Type(ctx, "products:1")
		require.NoError(t, err)
		assert.Equal(t, storage.KeyTypeHash, keyType)

		exists, err := backend.Exists(ctx, "products:1")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestBackend_HashGetAllBatch(t *testing.T) {
	storagetest.Each(t, func(t *testing.T, backend storage.Backend) {
		ctx := context.Background()

		require.NoError(t, backend.HashSet(ctx, "crops:1", map[string]string{"title": "Wheat"}))
		require.NoError(t, backend.HashSet(ctx, "crops:3", map[string]string{"title": "Rice"}))

		result, err := backend.HashGetAllBatch(ctx, []string{"crops:1", "crops:2", "crops:3"})
		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, "Wheat", result[0]["title"])
		assert.Empty(t, result[1])
		assert.Equal(t, "Rice", result[2]["title"])

		result, err = backend.HashGetAllBatch(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestBackend_Delete(t *testing.T) {
	storagetest.Each(t, func(t *testing.T, backend storage.Backend) {
		ctx := context.Background()

		require.NoError(t, backend.SetAdd(ctx, "articles", "1", "2"))
		require.NoError(t, backend.HashSet(ctx, "articles:1", map[string]string{"title": "a"}))
		require.NoError(t, backend.HashSet(ctx, "articles:2", map[string]string{"title": "b"}))

		require.NoError(t, backend.Delete(ctx, "articles", "articles:1", "articles:2", "articles:404"))

		for _, key := range []string{"articles", "articles:1", "articles:2"} {
			exists, err := backend.Exists(ctx, key)
			require.NoError(t, err)
			assert.False(t, exists, key)

			keyType, err := backend.Type(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, storage.KeyTypeNone, keyType, key)
		}
	})
}

func TestBackend_ConcurrentSetAdd(t *testing.T) {
	storagetest.Each(t, func(t *testing.T, backend storage.Backend) {
		ctx := context.Background()

		const n = 20
		ids := make([]string, n)
		for i := range ids {
			ids[i] = string(rune('a' + i))
		}

		var wg sync.WaitGroup
		for _, id := range ids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, backend.SetAdd(ctx, "orders", id))
			}()
		}
		wg.Wait()

		members, err := backend.SetMembers(ctx, "orders")
		require.NoError(t, err)
		assert.ElementsMatch(t, ids, members)
	})
}

func TestBackend_Ping(t *testing.T) {
	storagetest.Each(t, func(t *testing.T, backend storage.Backend) {
		require.NoError(t, backend.Ping(context.Background()))
	})
}

func TestRedisBackend_Unavailable(t *testing.T) {
	backend, mr := storagetest.NewRedis(t)
	ctx := context.Background()

	mr.SetError("ERR injected failure")

	_, err := backend.SetMembers(ctx, "products")
	require.ErrorIs(t, err, storage.ErrUnavailable)

	err = backend.HashSet(ctx, "products:1", map[string]string{"name": "x"})
	require.ErrorIs(t, err, storage.ErrUnavailable)

	_, err = backend.HashGetAllBatch(ctx, []string{"products:1"})
	require.ErrorIs(t, err, storage.ErrUnavailable)

	require.ErrorIs(t, backend.Ping(ctx), storage.ErrUnavailable)

	mr.SetError("")
	require.NoError(t, backend.Ping(ctx))
}

func TestRedisBackend_StringKeyType(t *testing.T) {
	backend, mr := storagetest.NewRedis(t)

	require.NoError(t, mr.Set("products", "legacy"))

	keyType, err := backend.Type(context.Background(), "products")
	require.NoError(t, err)
	assert.Equal(t, storage.KeyTypeString, keyType)
}

func TestRedisBackend_WrongTypedHash(t *testing.T) {
	backend, mr := storagetest.NewRedis(t)
	ctx := context.Background()

	require.NoError(t, backend.HashSet(ctx, "products:1", map[string]string{"name": "Urea"}))
	require.NoError(t, mr.Set("products:2", "garbage"))

	result, err := backend.HashGetAllBatch(ctx, []string{"products:1", "products:2"})
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{{"name": "Urea"}, {}}, result)

	fields, err := backend.HashGetAll(ctx, "products:2")
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestBadgerBackend_CancelledContext(t *testing.T) {
	backend := storagetest.NewBadger(t)
	ctx := context.Background()

	require.NoError(t, backend.SetAdd(ctx, "sliders", "1"))

	// Cancelled contexts surface as unavailability rather than partial writes.
	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	err := backend.SetAdd(cancelled, "sliders", "2")
	require.ErrorIs(t, err, storage.ErrUnavailable)
	assert.True(t, errors.Is(err, context.Canceled))

	members, err := backend.SetMembers(ctx, "sliders")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, members)
}
