package server

import (
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-core-fx/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/vigyat/agrostore/internal/server/docs"
	"github.com/vigyat/agrostore/internal/server/handlers/assets"
	"github.com/vigyat/agrostore/internal/server/handlers/auth"
	"github.com/vigyat/agrostore/internal/server/handlers/checkout"
	"github.com/vigyat/agrostore/internal/server/handlers/collections"
	"github.com/vigyat/agrostore/internal/server/handlers/storage"
	"github.com/vigyat/agrostore/pkg/openapifx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(func(log *zap.Logger) fiberfx.Options {
			opts := fiberfx.Options{}
			opts.WithErrorHandler(NewErrorHandler(log))
			opts.WithMetrics()
			return opts
		}),
		fx.Supply(docs.SwaggerInfo),

		fx.Provide(
			fx.Annotate(health.NewHandler, fx.ResultTags(`name:"health-handler"`)), fx.Private,
			fx.Annotate(collections.NewHandlers, fx.ResultTags(`group:"handlers,flatten"`)), fx.Private,
			fx.Annotate(assets.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(auth.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(checkout.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(storage.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
		),

		fx.Invoke(
			fx.Annotate(
				func(handlers []handler.Handler, healthHandler handler.Handler, openapiHandler *openapifx.Handler, app *fiber.App) {
					// Health endpoint
					healthHandler.Register(app)

					// Version 1 API group
					v1 := app.Group("/api/v1")
					openapiHandler.Register(v1.Group("/docs"))

					v1.Use(validation.Middleware)

					for _, h := range handlers {
						h.Register(v1)
					}
				},
				fx.ParamTags(`group:"handlers"`, `name:"health-handler"`),
			),
		),
	)
}
