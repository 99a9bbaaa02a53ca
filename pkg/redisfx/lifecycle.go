package redisfx

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewHook pings the server on start and closes the client on stop.
func NewHook(client *redis.Client, logger *zap.Logger) fx.Hook {
	return fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("failed to ping redis at %s: %w", client.Options().Addr, err)
			}
			logger.Info("redis connected", zap.String("addr", client.Options().Addr))
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("closing redis client")
			if err := client.Close(); err != nil {
				return fmt.Errorf("failed to close redis client: %w", err)
			}
			return nil
		},
	}
}
