package openapifx

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

// Module provides the *Handler. The *swag.Spec and Config are supplied by
// the application.
func Module() fx.Option {
	return fx.Module(
		"openapi",
		logger.WithNamedLogger("openapi"),
		fx.Provide(New),
	)
}
