package controllers

import (
	"clinic-bridge-service/internal/app/config"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 30 * time.Second

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	if internalConfig == nil || internalConfig.App.RequestTimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(internalConfig.App.RequestTimeoutSeconds) * time.Second
}

// handleError renders err, turning an expired request deadline into a timeout.
func handleError(ctx context.Context, log *zap.Logger, w http.ResponseWriter, method string, err error) {
	log.Error(method+" error",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Error(err),
	)

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func renderNotFound(w http.ResponseWriter, resource string) {
	utils.BuildJSONResponse(w, constvars.StatusNotFound, responses.NotFound{Error: fmt.Sprintf(constvars.ErrClientResourceNotFound, resource)})
}
