package badgerfx

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// New opens a BadgerDB with badger's own logging routed through zap.
func New(config Config, logger *zap.Logger) (*badger.DB, error) {
	opts := config.Build().
		WithLogger(newLogger(logger))

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %w", err)
	}

	return db, nil
}
