package controllers

import (
	"clinic-bridge-service/internal/app/config"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHealthController(t *testing.T) {
	internalConfig := &config.InternalConfig{App: config.App{Version: "v1"}}
	ctrl := NewHealthController(zap.NewNop(), internalConfig)

	t.Run("health", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		ctrl.Health(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var body responses.Health
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "v1", body.Version)
	})

	t.Run("not ready without upstream", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		ctrl.Ready(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})

	t.Run("ready", func(t *testing.T) {
		internalConfig.Upstream.BaseUrl = "http://clinic.local"
		recorder := httptest.NewRecorder()
		ctrl.Ready(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"status":"ready"}`, recorder.Body.String())
	})
}
