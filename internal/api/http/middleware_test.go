package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/civic-complaint-service/internal/observability"
	apperrors "github.com/spec-kit/civic-complaint-service/pkg/util/errorutil"
)

type errorEnvelope struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newTestApp(t *testing.T) (*fiber.App, *observability.Metrics) {
	t.Helper()
	app := fiber.New()
	metrics := observability.NewMetrics()
	RegisterMiddlewares(app, zap.NewNop(), metrics, time.Second)
	return app, metrics
}

func performRequest(t *testing.T, app *fiber.App, path string) (*http.Response, errorEnvelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope errorEnvelope
	if len(body) > 0 {
		_ = json.Unmarshal(body, &envelope)
	}
	return resp, envelope
}

func TestErrorMiddlewareRendersDomainError(t *testing.T) {
	app, _ := newTestApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperrors.NewValidationError("request validation failed", map[string]any{"pincode": "must be exactly 6 characters"})
	})

	resp, envelope := performRequest(t, app, "/boom")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
	assert.Equal(t, "request validation failed", envelope.Error.Message)
	assert.Equal(t, "must be exactly 6 characters", envelope.Error.Details["pincode"])
}

func TestErrorMiddlewareMapsUnknownErrorsToInternal(t *testing.T) {
	app, _ := newTestApp(t)
	app.Get("/unknown", func(c *fiber.Ctx) error {
		return io.ErrUnexpectedEOF
	})

	resp, envelope := performRequest(t, app, "/unknown")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
}

func TestErrorMiddlewareRecoversPanic(t *testing.T) {
	app, _ := newTestApp(t)
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("unexpected")
	})

	resp, envelope := performRequest(t, app, "/panic")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
}

func TestSuccessfulRequestsPassThrough(t *testing.T) {
	app, metrics := newTestApp(t)
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": "ok"})
	})

	resp, _ := performRequest(t, app, "/ok")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	requests, _ := metrics.Snapshot()
	assert.NotEmpty(t, requests)
}
