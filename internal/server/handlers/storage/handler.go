package storage

import (
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/vigyat/agrostore/internal/storage"
	"go.uber.org/zap"
)

type HealthResponse struct {
	OK     bool   `json:"ok"`
	Driver string `json:"driver"`
	Error  string `json:"error,omitempty"`
}

type Handler struct {
	backend storage.Backend

	logger *zap.Logger
}

func NewHandler(backend storage.Backend, logger *zap.Logger) handler.Handler {
	return &Handler{
		backend: backend,
		logger:  logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/storage/health", h.health)
}

//	@Summary	Check the storage backend
//	@Tags		storage
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Failure	503	{object}	HealthResponse
//	@Router		/storage/health [get]
//
// Ping the storage backend.
func (h *Handler) health(c *fiber.Ctx) error {
	response := HealthResponse{OK: true, Driver: string(h.backend.Driver()), Error: ""}

	if err := h.backend.Ping(c.Context()); err != nil {
		h.logger.Warn("storage ping failed", zap.Error(err))
		response.OK = false
		response.Error = err.Error()
		return c.Status(fiber.StatusServiceUnavailable).JSON(response)
	}

	return c.JSON(response)
}
