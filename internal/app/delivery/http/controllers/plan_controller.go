package controllers

import (
	"clinic-bridge-service/internal/app/config"
	"clinic-bridge-service/internal/app/contracts"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PlanController struct {
	Log         *zap.Logger
	Timeout     time.Duration
	PlanUsecase contracts.PlanUsecase
}

func NewPlanController(logger *zap.Logger, internalConfig *config.InternalConfig, planUsecase contracts.PlanUsecase) *PlanController {
	return &PlanController{
		Log:         logger,
		Timeout:     requestTimeout(internalConfig),
		PlanUsecase: planUsecase,
	}
}

func (ctrl *PlanController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	ctrl.Log.Info("PlanController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	pagination, err := utils.BuildPaginationRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	plans, _, err := ctrl.PlanUsecase.FindAll(ctx, requests.PlanFilter{
		Pagination:        pagination,
		Search:            utils.FirstQuery(r, "search"),
		HealthInsuranceID: utils.FirstQuery(r, "healthInsurance"),
		LocationID:        utils.FirstQuery(r, "location"),
		ProfessionalID:    utils.FirstQuery(r, "professional"),
	})
	if err != nil {
		handleError(ctx, ctrl.Log, w, "PlanController.FindAll", err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, plans)
}

func (ctrl *PlanController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	planID := chi.URLParam(r, "id")
	ctrl.Log.Info("PlanController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("plan_id", planID),
	)

	plan, err := ctrl.PlanUsecase.FindByID(ctx, planID)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "PlanController.FindByID", err)
		return
	}
	if plan == nil {
		renderNotFound(w, "Plan")
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, plan)
}
