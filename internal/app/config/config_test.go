package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "https://clinic.example/api-host")
	t.Setenv("UPSTREAM_AUTH_MODE", "bearer")
	t.Setenv("UPSTREAM_TIMEOUT_IN_MILLIS", "5000")
	t.Setenv("APP_CORS_ORIGINS", "https://agenda.example,https://admin.example")

	cfg := NewInternalConfig()

	assert.Equal(t, "https://clinic.example/api-host", cfg.Upstream.BaseUrl)
	assert.Equal(t, "bearer", cfg.Upstream.AuthMode)
	assert.Equal(t, 5000, cfg.Upstream.TimeoutInMillis)
	assert.Equal(t, "1.0", cfg.Upstream.APIVersion)
	assert.Equal(t, []string{"https://agenda.example", "https://admin.example"}, cfg.App.CorsOrigins)
}

func TestNewDriverConfig(t *testing.T) {
	t.Setenv("RABBITMQ_URL", "")

	cfg := NewDriverConfig()

	assert.Empty(t, cfg.RabbitMQ.URL)
	assert.Equal(t, "appointment_events", cfg.RabbitMQ.AppointmentEventsQueue)
}
