package internal

import (
	"context"

	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"github.com/vigyat/agrostore/internal/assets"
	"github.com/vigyat/agrostore/internal/auth"
	"github.com/vigyat/agrostore/internal/catalog"
	"github.com/vigyat/agrostore/internal/config"
	"github.com/vigyat/agrostore/internal/server"
	"github.com/vigyat/agrostore/internal/storage"
	"github.com/vigyat/agrostore/pkg/openapifx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		healthfx.Module(),
		fiberfx.Module(),
		validator.Module,
		openapifx.Module(),
		//
		// APP MODULES
		config.Module(),
		storage.Module(),
		server.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "1.0.0", ReleaseID: 1} }),
		assets.Module(),
		auth.Module(),
		catalog.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("🌾 AgroStore application starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("🛑 AgroStore application shutting down gracefully")
					return nil
				},
			})
		}),
	).Run()
}
