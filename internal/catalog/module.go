package catalog

import (
	"context"

	"github.com/go-core-fx/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vigyat/agrostore/internal/assets"
	"github.com/vigyat/agrostore/internal/collection"
	"github.com/vigyat/agrostore/internal/storage"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"catalog",
		logger.WithNamedLogger("catalog"),
		fx.Provide(
			func() (*collection.Metrics, error) {
				return collection.NewMetrics(prometheus.DefaultRegisterer)
			},
			fx.Private,
		),
		fx.Provide(func(backend storage.Backend, store *assets.Store, metrics *collection.Metrics, log *zap.Logger) *Catalog {
			return New(
				backend,
				log,
				collection.WithAssetReleaser(store),
				collection.WithMetrics(metrics),
			)
		}),
		fx.Invoke(func(lc fx.Lifecycle, cfg Config, catalog *Catalog) {
			if !cfg.Seed {
				return
			}
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return catalog.Seed(ctx)
				},
			})
		}),
	)
}
