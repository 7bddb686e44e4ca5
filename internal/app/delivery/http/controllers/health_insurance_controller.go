package controllers

import (
	"clinic-bridge-service/internal/app/config"
	"clinic-bridge-service/internal/app/contracts"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HealthInsuranceController struct {
	Log                    *zap.Logger
	Timeout                time.Duration
	HealthInsuranceUsecase contracts.HealthInsuranceUsecase
}

func NewHealthInsuranceController(logger *zap.Logger, internalConfig *config.InternalConfig, healthInsuranceUsecase contracts.HealthInsuranceUsecase) *HealthInsuranceController {
	return &HealthInsuranceController{
		Log:                    logger,
		Timeout:                requestTimeout(internalConfig),
		HealthInsuranceUsecase: healthInsuranceUsecase,
	}
}

func (ctrl *HealthInsuranceController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	ctrl.Log.Info("HealthInsuranceController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	pagination, err := utils.BuildPaginationRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	healthInsurances, page, err := ctrl.HealthInsuranceUsecase.FindAll(ctx, requests.HealthInsuranceFilter{
		Pagination: pagination,
		Search:     utils.FirstQuery(r, "search"),
		Active:     utils.QueryBool(r, "active"),
	})
	if err != nil {
		handleError(ctx, ctrl.Log, w, "HealthInsuranceController.FindAll", err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, page, healthInsurances)
}

func (ctrl *HealthInsuranceController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	healthInsuranceID := chi.URLParam(r, "id")
	ctrl.Log.Info("HealthInsuranceController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("health_insurance_id", healthInsuranceID),
	)

	healthInsurance, err := ctrl.HealthInsuranceUsecase.FindByID(ctx, healthInsuranceID)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "HealthInsuranceController.FindByID", err)
		return
	}
	if healthInsurance == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotFound(constvars.ResourceHealthInsurance, healthInsuranceID))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, healthInsurance)
}
