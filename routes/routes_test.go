package routes

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-service/database"
	"ai-service/handlers"
	"ai-service/insights"
	"ai-service/payments"
	"ai-service/predictor"
	"ai-service/registry"
	"ai-service/sampledata"
)

func newTestApp(t *testing.T, apiKey string) *fiber.App {
	t.Helper()

	store, err := database.Connect(context.Background(), "", filepath.Join(t.TempDir(), "ai.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	reg := registry.New(time.Hour)
	t.Cleanup(reg.Stop)

	gen := sampledata.New(sampledata.DefaultConfig(), nil)
	h := handlers.New(predictor.New(gen, nil), payments.New(gen, nil), insights.New(gen, nil, nil), reg, store)

	app := fiber.New()
	SetupRoutes(app, h, apiKey, "")
	return app
}

func TestPublicRoutesSkipAuth(t *testing.T) {
	app := newTestApp(t, "secret-key")

	for _, path := range []string{"/", "/health", "/health/ready"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
		require.NoError(t, err)
		if resp.StatusCode != 200 {
			t.Fatalf("%s: expected 200 without credentials, got %d", path, resp.StatusCode)
		}
	}
}

func TestProtectedRoutesRequireKey(t *testing.T) {
	app := newTestApp(t, "secret-key")

	paths := [][2]string{
		{"POST", "/predict/demand"},
		{"POST", "/recommend/payments"},
		{"POST", "/insights/business"},
		{"POST", "/query"},
		{"POST", "/train"},
		{"GET", "/status/1"},
		{"GET", "/debug/ping"},
		{"GET", "/debug/run_predictor"},
	}
	for _, p := range paths {
		resp, err := app.Test(httptest.NewRequest(p[0], p[1], nil), -1)
		require.NoError(t, err)
		if resp.StatusCode != 401 {
			t.Fatalf("%s %s: expected 401 without key, got %d", p[0], p[1], resp.StatusCode)
		}
	}
}

func TestProtectedRouteAcceptsKey(t *testing.T) {
	app := newTestApp(t, "secret-key")

	req := httptest.NewRequest("GET", "/debug/ping", nil)
	req.Header.Set("X-API-KEY", "secret-key")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestUnknownRouteReturns404(t *testing.T) {
	app := newTestApp(t, "secret-key")

	req := httptest.NewRequest("GET", "/nope", nil)
	req.Header.Set("X-API-KEY", "secret-key")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
