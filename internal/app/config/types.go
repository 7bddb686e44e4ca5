package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Logger         *zap.Logger
		AccessLogger   *logrus.Logger
		RabbitMQ       *amqp091.Connection
		Registry       *prometheus.Registry
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App      App
		Upstream Upstream
	}

	DriverConfig struct {
		Logger   Logger
		RabbitMQ RabbitMQ
	}

	App struct {
		Env                   string
		Port                  string
		Version               string
		Timezone              string
		EndpointPrefix        string
		CorsOrigins           []string
		CorsAllowCredentials  bool
		MaxRequests           int
		ShutdownTimeout       int
		RequestTimeoutSeconds int
	}

	Upstream struct {
		BaseUrl                  string
		AuthMode                 string
		Username                 string
		StaticToken              string
		Login                    string
		Password                 string
		LoginPath                string
		TokenTTLInMinutes        int
		TimeoutInMillis          int
		APIVersion               string
		DefaultHealthInsuranceID int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		URL                     string
		AppointmentEventsQueue  string
		PublishTimeoutInSeconds int
	}
)
