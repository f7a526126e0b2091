package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/go-crudkit/internal/config"
	"github.com/deppfellow/go-crudkit/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func checkHealth(t *testing.T, db pinger) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	cfg := config.Default()
	logger := zerolog.Nop()
	h := newHealthHandler(&server.Server{Config: &cfg, Logger: &logger}, db)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)
	require.NoError(t, h.CheckHealth(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHealthHandler_CheckHealth(t *testing.T) {
	t.Run("Should report healthy when the database answers", func(t *testing.T) {
		rec, body := checkHealth(t, pingFunc(func(context.Context) error { return nil }))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "local", body["environment"])
	})

	t.Run("Should report unavailable when the ping fails", func(t *testing.T) {
		rec, body := checkHealth(t, pingFunc(func(context.Context) error { return errors.New("connection refused") }))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "unhealthy", body["status"])
		database := body["checks"].(map[string]any)["database"].(map[string]any)
		assert.Equal(t, "connection refused", database["error"])
	})

	t.Run("Should report unavailable without a database", func(t *testing.T) {
		rec, _ := checkHealth(t, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
