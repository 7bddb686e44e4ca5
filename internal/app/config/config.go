package config

import (
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			URL:                     utils.GetEnvString("RABBITMQ_URL", ""),
			AppointmentEventsQueue:  utils.GetEnvString("RABBITMQ_APPOINTMENT_EVENTS_QUEUE", "appointment_events"),
			PublishTimeoutInSeconds: utils.GetEnvInt("RABBITMQ_PUBLISH_TIMEOUT_IN_SECONDS", 5),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                   utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                  utils.GetEnvString("APP_PORT", ":3000"),
			Version:               utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:              utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:        utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			CorsOrigins:           utils.GetEnvStringSlice("APP_CORS_ORIGINS", []string{"*"}),
			CorsAllowCredentials:  utils.GetEnvBool("APP_CORS_CREDENTIALS", true),
			MaxRequests:           utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeout:       utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 35),
		},
		Upstream: Upstream{
			BaseUrl:                  utils.GetEnvString("UPSTREAM_BASE_URL", ""),
			AuthMode:                 utils.GetEnvString("UPSTREAM_AUTH_MODE", constvars.UpstreamAuthModeBasic),
			Username:                 utils.GetEnvString("UPSTREAM_USERNAME", ""),
			StaticToken:              utils.GetEnvString("UPSTREAM_STATIC_TOKEN", ""),
			Login:                    utils.GetEnvString("UPSTREAM_LOGIN", ""),
			Password:                 utils.GetEnvString("UPSTREAM_PASSWORD", ""),
			LoginPath:                utils.GetEnvString("UPSTREAM_LOGIN_PATH", "/api/Auth/Login"),
			TokenTTLInMinutes:        utils.GetEnvInt("UPSTREAM_TOKEN_TTL_IN_MINUTES", 55),
			TimeoutInMillis:          utils.GetEnvInt("UPSTREAM_TIMEOUT_IN_MILLIS", 30000),
			APIVersion:               utils.GetEnvString("UPSTREAM_API_VERSION", "1.0"),
			DefaultHealthInsuranceID: utils.GetEnvInt("UPSTREAM_DEFAULT_HEALTH_INSURANCE_ID", 0),
		},
	}
}
