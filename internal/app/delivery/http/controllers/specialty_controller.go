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

type SpecialtyController struct {
	Log              *zap.Logger
	Timeout          time.Duration
	SpecialtyUsecase contracts.SpecialtyUsecase
}

func NewSpecialtyController(logger *zap.Logger, internalConfig *config.InternalConfig, specialtyUsecase contracts.SpecialtyUsecase) *SpecialtyController {
	return &SpecialtyController{
		Log:              logger,
		Timeout:          requestTimeout(internalConfig),
		SpecialtyUsecase: specialtyUsecase,
	}
}

func (ctrl *SpecialtyController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	ctrl.Log.Info("SpecialtyController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	pagination, err := utils.BuildPaginationRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	specialties, _, err := ctrl.SpecialtyUsecase.FindAll(ctx, requests.SpecialtyFilter{
		Pagination: pagination,
		Search:     utils.FirstQuery(r, "search"),
	})
	if err != nil {
		handleError(ctx, ctrl.Log, w, "SpecialtyController.FindAll", err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, specialties)
}

func (ctrl *SpecialtyController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	specialtyID := chi.URLParam(r, "id")
	ctrl.Log.Info("SpecialtyController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("specialty_id", specialtyID),
	)

	specialty, err := ctrl.SpecialtyUsecase.FindByID(ctx, specialtyID)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "SpecialtyController.FindByID", err)
		return
	}
	if specialty == nil {
		renderNotFound(w, "Specialty")
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, specialty)
}
