package openapifx_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"github.com/vigyat/agrostore/pkg/openapifx"
	"go.uber.org/zap/zaptest"
)

func TestHandler_Disabled(t *testing.T) {
	app := fiber.New()
	spec := &swag.Spec{Host: "localhost:3000", BasePath: "/api/v1"}

	openapifx.New(openapifx.Config{Enabled: false}, spec, zaptest.NewLogger(t)).Register(app.Group("/docs"))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/docs/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandler_PublicOverrides(t *testing.T) {
	spec := &swag.Spec{Host: "localhost:3000", BasePath: "/api/v1"}

	openapifx.New(
		openapifx.Config{Enabled: true, PublicHost: "shop.example.com", PublicPath: "/store/api/v1"},
		spec,
		zaptest.NewLogger(t),
	)

	assert.Equal(t, "shop.example.com", spec.Host)
	assert.Equal(t, "/store/api/v1", spec.BasePath)
}
