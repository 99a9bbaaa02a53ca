package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// errWrongType prefixes the reply to a hash command on a key of another type.
const errWrongType = "WRONGTYPE"

type redisBackend struct {
	client redis.UniversalClient

	logger *zap.Logger
}

// NewRedisBackend creates a Backend on top of a go-redis client.
func NewRedisBackend(client redis.UniversalClient, logger *zap.Logger) Backend {
	return &redisBackend{client: client, logger: logger}
}

// SetAdd implements Backend.
func (b *redisBackend) SetAdd(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}

	if err := b.client.SAdd(ctx, key, lo.ToAnySlice(members)...).Err(); err != nil {
		return unavailable("sadd", key, err)
	}

	return nil
}

// SetRemove implements Backend.
func (b *redisBackend) SetRemove(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}

	if err := b.client.SRem(ctx, key, lo.ToAnySlice(members)...).Err(); err != nil {
		return unavailable("srem", key, err)
	}

	return nil
}

// SetMembers implements Backend.
func (b *redisBackend) SetMembers(ctx context.Context, key string) ([]string, error) {
	members, err := b.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, unavailable("smembers", key, err)
	}

	return members, nil
}

// HashGetAll implements Backend.
func (b *redisBackend) HashGetAll(ctx context.Context, key string) (map[string]string, error) {
	fields, err := b.client.HGetAll(ctx, key).Result()
	if redis.HasErrorPrefix(err, errWrongType) {
		b.logger.Warn("record key holds another type, treating as empty", zap.String("key", key))
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, unavailable("hgetall", key, err)
	}

	return fields, nil
}

// HashGetAllBatch implements Backend with a single pipeline. Keys holding
// another type read as empty hashes so one bad key does not fail the batch.
func (b *redisBackend) HashGetAllBatch(ctx context.Context, keys []string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return []map[string]string{}, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(keys))
	_, _ = b.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, key := range keys {
			cmds[i] = pipe.HGetAll(ctx, key)
		}
		return nil
	})

	result := make([]map[string]string, len(cmds))
	for i, cmd := range cmds {
		err := cmd.Err()
		switch {
		case err == nil:
			result[i] = cmd.Val()
		case redis.HasErrorPrefix(err, errWrongType):
			b.logger.Warn("record key holds another type, treating as empty", zap.String("key", keys[i]))
			result[i] = map[string]string{}
		default:
			return nil, unavailable("pipeline hgetall", keys[i], err)
		}
	}

	return result, nil
}

// HashSet implements Backend.
func (b *redisBackend) HashSet(ctx context.Context, key string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	pairs := make([]string, 0, len(fields)*2)
	for field, value := range fields {
		pairs = append(pairs, field, value)
	}

	if err := b.client.HSet(ctx, key, pairs).Err(); err != nil {
		return unavailable("hset", key, err)
	}

	return nil
}

// Delete implements Backend. A multi-key DEL is a single atomic command.
func (b *redisBackend) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := b.client.Del(ctx, keys...).Err(); err != nil {
		return unavailable("del", keys[0], err)
	}

	return nil
}

// Exists implements Backend.
func (b *redisBackend) Exists(ctx context.Context, key string) (bool, error) {
	n, err := b.client.Exists(ctx, key).Result()
	if err != nil {
		return false, unavailable("exists", key, err)
	}

	return n > 0, nil
}

// Type implements Backend.
func (b *redisBackend) Type(ctx context.Context, key string) (KeyType, error) {
	t, err := b.client.Type(ctx, key).Result()
	if err != nil {
		return KeyTypeNone, unavailable("type", key, err)
	}

	return KeyType(t), nil
}

// Ping implements Backend.
func (b *redisBackend) Ping(ctx context.Context) error {
	if err := b.client.Ping(ctx).Err(); err != nil {
		return unavailable("ping", "", err)
	}

	return nil
}

// Driver implements Backend.
func (b *redisBackend) Driver() Driver {
	return DriverRedis
}

var _ Backend = (*redisBackend)(nil)
