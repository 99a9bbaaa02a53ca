package storage

import (
	"fmt"

	"github.com/go-core-fx/logger"
	"github.com/vigyat/agrostore/pkg/badgerfx"
	"github.com/vigyat/agrostore/pkg/redisfx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"storage",
		logger.WithNamedLogger("storage"),
		fx.Provide(NewBackend),
	)
}

type backendParams struct {
	fx.In

	Config Config
	Redis  redisfx.Config
	Badger badgerfx.Config

	Logger    *zap.Logger
	Lifecycle fx.Lifecycle
}

// NewBackend opens the configured driver and ties its connection to the
// application lifecycle.
func NewBackend(p backendParams) (Backend, error) {
	switch p.Config.Driver {
	case DriverRedis:
		client, err := redisfx.New(p.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		p.Lifecycle.Append(redisfx.NewHook(client, p.Logger.Named("redis")))

		p.Logger.Info("using redis storage backend")
		return NewRedisBackend(client, p.Logger), nil

	case DriverBadger, "":
		db, err := badgerfx.New(p.Badger, p.Logger.Named("badger"))
		if err != nil {
			return nil, err
		}
		p.Lifecycle.Append(badgerfx.NewHook(db, p.Logger.Named("badger")))

		p.Logger.Info("using badger storage backend",
			zap.String("dir", p.Badger.Dir),
			zap.Bool("in_memory", p.Badger.InMemory),
		)
		return NewBadgerBackend(db, p.Logger), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, p.Config.Driver)
}
