package middlewares

import (
	"clinic-bridge-service/internal/app/config"
	"clinic-bridge-service/internal/pkg/metrics"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	HTTPMetrics    *metrics.HTTPMetrics
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, httpMetrics *metrics.HTTPMetrics) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		HTTPMetrics:    httpMetrics,
	}
}
