package openapifx

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

// Handler serves the Swagger UI and the registered spec.
type Handler struct {
	config Config
	spec   *swag.Spec

	logger *zap.Logger
}

func New(config Config, spec *swag.Spec, logger *zap.Logger) *Handler {
	if config.PublicHost != "" {
		spec.Host = config.PublicHost
	}
	if config.PublicPath != "" {
		spec.BasePath = config.PublicPath
	}

	return &Handler{
		config: config,
		spec:   spec,

		logger: logger,
	}
}

// Register mounts the UI on r when enabled.
func (h *Handler) Register(r fiber.Router) {
	if !h.config.Enabled {
		h.logger.Debug("openapi disabled")
		return
	}

	r.Get("/*", swagger.HandlerDefault)
	h.logger.Info("openapi enabled", zap.String("host", h.spec.Host), zap.String("base_path", h.spec.BasePath))
}
