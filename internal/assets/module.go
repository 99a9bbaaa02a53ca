package assets

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"assets",
		logger.WithNamedLogger("assets"),
		fx.Provide(NewStore),
	)
}
