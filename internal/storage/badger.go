package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

const (
	prefixHash = "h\x00"
	prefixSet  = "s\x00"

	// conflictRetries bounds how often a primitive re-runs after badger
	// reports an optimistic transaction conflict.
	conflictRetries = 8
)

// badgerBackend emulates the set and hash primitives on an embedded badger
// database. Hashes are stored as one JSON document per key; set members are
// stored as individual keys so concurrent adds never conflict.
type badgerBackend struct {
	db *badger.DB

	logger *zap.Logger
}

// NewBadgerBackend creates a Backend on top of an open badger database.
func NewBadgerBackend(db *badger.DB, logger *zap.Logger) Backend {
	return &badgerBackend{db: db, logger: logger}
}

// SetAdd implements Backend.
func (b *badgerBackend) SetAdd(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}

	err := b.update(ctx, func(txn *badger.Txn) error {
		for _, member := range members {
			if err := txn.Set(setMemberKey(key, member), []byte{}); err != nil {
				return fmt.Errorf("failed to set member: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return unavailable("sadd", key, err)
	}

	return nil
}

// SetRemove implements Backend.
func (b *badgerBackend) SetRemove(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}

	err := b.update(ctx, func(txn *badger.Txn) error {
		for _, member := range members {
			if err := txn.Delete(setMemberKey(key, member)); err != nil {
				return fmt.Errorf("failed to delete member: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return unavailable("srem", key, err)
	}

	return nil
}

// SetMembers implements Backend.
func (b *badgerBackend) SetMembers(ctx context.Context, key string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable("smembers", key, err)
	}

	members := []string{}
	err := b.db.View(func(txn *badger.Txn) error {
		prefix := setPrefix(key)

		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			members = append(members, string(it.Item().Key()[len(prefix):]))
		}

		return nil
	})
	if err != nil {
		return nil, unavailable("smembers", key, err)
	}

	return members, nil
}

// HashGetAll implements Backend.
func (b *badgerBackend) HashGetAll(ctx context.Context, key string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable("hgetall", key, err)
	}

	var fields map[string]string
	err := b.db.View(func(txn *badger.Txn) error {
		var err error
		fields, err = b.readHash(txn, key)
		return err
	})
	if err != nil {
		return nil, unavailable("hgetall", key, err)
	}

	return fields, nil
}

// HashGetAllBatch implements Backend inside a single read transaction.
func (b *badgerBackend) HashGetAllBatch(ctx context.Context, keys []string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return []map[string]string{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, unavailable("batch hgetall", keys[0], err)
	}

	result := make([]map[string]string, len(keys))
	err := b.db.View(func(txn *badger.Txn) error {
		for i, key := range keys {
			fields, err := b.readHash(txn, key)
			if err != nil {
				return err
			}
			result[i] = fields
		}
		return nil
	})
	if err != nil {
		return nil, unavailable("batch hgetall", keys[0], err)
	}

	return result, nil
}

// HashSet implements Backend.
func (b *badgerBackend) HashSet(ctx context.Context, key string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	err := b.update(ctx, func(txn *badger.Txn) error {
		current, err := b.readHash(txn, key)
		if err != nil {
			return err
		}

		maps.Copy(current, fields)

		data, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("failed to marshal hash: %w", err)
		}

		return txn.Set(hashKey(key), data)
	})
	if err != nil {
		return unavailable("hset", key, err)
	}

	return nil
}

// Delete implements Backend. All keys are removed in one transaction.
func (b *badgerBackend) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	err := b.update(ctx, func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete(hashKey(key)); err != nil {
				return fmt.Errorf("failed to delete hash: %w", err)
			}

			members, err := collectKeys(txn, setPrefix(key))
			if err != nil {
				return err
			}
			for _, member := range members {
				if delErr := txn.Delete(member); delErr != nil {
					return fmt.Errorf("failed to delete member: %w", delErr)
				}
			}
		}
		return nil
	})
	if err != nil {
		return unavailable("del", keys[0], err)
	}

	return nil
}

// Exists implements Backend.
func (b *badgerBackend) Exists(ctx context.Context, key string) (bool, error) {
	t, err := b.Type(ctx, key)
	if err != nil {
		return false, err
	}

	return t != KeyTypeNone, nil
}

// Type implements Backend.
func (b *badgerBackend) Type(ctx context.Context, key string) (KeyType, error) {
	if err := ctx.Err(); err != nil {
		return KeyTypeNone, unavailable("type", key, err)
	}

	keyType := KeyTypeNone
	err := b.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(hashKey(key))
		switch {
		case err == nil:
			keyType = KeyTypeHash
			return nil
		case !errors.Is(err, badger.ErrKeyNotFound):
			return fmt.Errorf("failed to get hash: %w", err)
		}

		prefix := setPrefix(key)
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		it.Seek(prefix)
		if it.ValidForPrefix(prefix) {
			keyType = KeyTypeSet
		}

		return nil
	})
	if err != nil {
		return KeyTypeNone, unavailable("type", key, err)
	}

	return keyType, nil
}

// Ping implements Backend.
func (b *badgerBackend) Ping(_ context.Context) error {
	if b.db.IsClosed() {
		return unavailable("ping", "", badger.ErrDBClosed)
	}

	return nil
}

// Driver implements Backend.
func (b *badgerBackend) Driver() Driver {
	return DriverBadger
}

func (b *badgerBackend) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	var err error
	for range conflictRetries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		err = b.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}

	return err
}

// readHash returns the hash at key. An undecodable document reads as an
// empty hash and is replaced by the next write.
func (b *badgerBackend) readHash(txn *badger.Txn, key string) (map[string]string, error) {
	fields := map[string]string{}

	item, err := txn.Get(hashKey(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fields, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hash: %w", err)
	}

	var decodeErr error
	if valErr := item.Value(func(val []byte) error {
		decodeErr = json.Unmarshal(val, &fields)
		return nil
	}); valErr != nil {
		return nil, fmt.Errorf("failed to read hash: %w", valErr)
	}
	if decodeErr != nil {
		b.logger.Warn("corrupt hash document, treating as empty", zap.String("key", key), zap.Error(decodeErr))
		return map[string]string{}, nil
	}
	if fields == nil {
		fields = map[string]string{}
	}

	return fields, nil
}

func collectKeys(txn *badger.Txn, prefix []byte) ([][]byte, error) {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = prefix

	it := txn.NewIterator(opts)
	defer it.Close()

	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}

	return keys, nil
}

func hashKey(key string) []byte {
	return []byte(prefixHash + key)
}

func setPrefix(key string) []byte {
	return []byte(prefixSet + key + "\x00")
}

func setMemberKey(key, member string) []byte {
	return append(setPrefix(key), member...)
}

var _ Backend = (*badgerBackend)(nil)
