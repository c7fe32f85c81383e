package middleware

import (
	"bytes"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func newPerformanceApp() *fiber.App {
	app := fiber.New()
	app.Use(PerformanceLogger(
		RouteBudget{Prefix: "/api/v1/intake", Slow: 20 * time.Millisecond},
		RouteBudget{Prefix: "/api/v1/dashboard", Slow: time.Hour},
	))
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/api/v1/intake/lento", func(c *fiber.Ctx) error {
		time.Sleep(40 * time.Millisecond)
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/api/v1/intake/rapido", ok)
	app.Get("/api/v1/dashboard/stats", ok)
	app.Get("/health", ok)
	return app
}

func get(t *testing.T, app *fiber.App, path string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
}

func TestPerformanceLoggerSlowRequest(t *testing.T) {
	buf := captureLog(t)
	app := newPerformanceApp()

	get(t, app, "/api/v1/intake/rapido")
	assert.Empty(t, buf.String())

	get(t, app, "/api/v1/intake/lento")
	assert.Contains(t, buf.String(), "LENTA")
	assert.Contains(t, buf.String(), "GET /api/v1/intake/lento - 200")
}

func TestPerformanceLoggerDashboardFilter(t *testing.T) {
	buf := captureLog(t)
	app := newPerformanceApp()

	get(t, app, "/api/v1/dashboard/stats?filter_by=category&filter_value=all")
	get(t, app, "/api/v1/dashboard/stats")
	assert.Empty(t, buf.String())

	get(t, app, "/api/v1/dashboard/stats?filter_by=category&filter_value=makeup")
	assert.Contains(t, buf.String(), "Filtro: category=makeup")
	assert.NotContains(t, buf.String(), "LENTA")
}

func TestPerformanceLoggerIgnoresOtherRoutes(t *testing.T) {
	buf := captureLog(t)
	app := fiber.New()
	app.Use(PerformanceLogger(RouteBudget{Prefix: "/api/v1", Slow: 0}))
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	get(t, app, "/health")

	assert.Empty(t, buf.String())
}

func TestBudgetForFirstMatchWins(t *testing.T) {
	b, ok := budgetFor(DefaultRouteBudgets, "/api/v1/dashboard/insights")
	require.True(t, ok)
	assert.Equal(t, 15*time.Second, b.Slow)

	b, ok = budgetFor(DefaultRouteBudgets, "/api/v1/dashboard/stats")
	require.True(t, ok)
	assert.Equal(t, time.Second, b.Slow)

	_, ok = budgetFor(DefaultRouteBudgets, "/health")
	assert.False(t, ok)
}
