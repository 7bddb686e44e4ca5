package controllers

import (
	"clinic-bridge-service/internal/app/config"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type HealthController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewHealthController(logger *zap.Logger, internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{
		Log:            logger,
		InternalConfig: internalConfig,
	}
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Health{
		Status:    "healthy",
		Timestamp: utils.Timestamp(),
		Version:   ctrl.InternalConfig.App.Version,
	})
}

// Ready reports 503 until an upstream base URL is configured.
func (ctrl *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	if ctrl.InternalConfig.Upstream.BaseUrl == "" {
		ctrl.Log.Warn("HealthController.Ready upstream base url is not configured",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		)
		utils.BuildJSONResponse(w, constvars.StatusServiceUnavailable, responses.Readiness{
			Status: "not ready",
			Reason: constvars.ErrDevUpstreamNotConfigured,
		})
		return
	}
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Readiness{Status: "ready"})
}
