package badgerfx

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewHook closes db when the application stops.
func NewHook(db *badger.DB, logger *zap.Logger) fx.Hook {
	return fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("badger storage opened")
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("closing badger storage")
			if err := db.Close(); err != nil {
				return fmt.Errorf("failed to close BadgerDB: %w", err)
			}
			return nil
		},
	}
}
