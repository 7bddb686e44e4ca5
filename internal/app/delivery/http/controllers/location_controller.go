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

type LocationController struct {
	Log             *zap.Logger
	Timeout         time.Duration
	LocationUsecase contracts.LocationUsecase
}

func NewLocationController(logger *zap.Logger, internalConfig *config.InternalConfig, locationUsecase contracts.LocationUsecase) *LocationController {
	return &LocationController{
		Log:             logger,
		Timeout:         requestTimeout(internalConfig),
		LocationUsecase: locationUsecase,
	}
}

func (ctrl *LocationController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	requestID := utils.GetRequestID(ctx)
	ctrl.Log.Info("LocationController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	pagination, err := utils.BuildPaginationRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	locations, page, err := ctrl.LocationUsecase.FindAll(ctx, requests.LocationFilter{
		Pagination:     pagination,
		Search:         utils.FirstQuery(r, "search"),
		SpecialtyID:    utils.FirstQuery(r, "specialty"),
		ProfessionalID: utils.FirstQuery(r, "professional"),
	})
	if err != nil {
		handleError(ctx, ctrl.Log, w, "LocationController.FindAll", err)
		return
	}

	ctrl.Log.Info("LocationController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(locations)),
	)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, page, locations)
}

func (ctrl *LocationController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	locationID := chi.URLParam(r, "id")
	ctrl.Log.Info("LocationController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("location_id", locationID),
	)

	location, err := ctrl.LocationUsecase.FindByID(ctx, locationID)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "LocationController.FindByID", err)
		return
	}
	if location == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotFound(constvars.ResourceLocation, locationID))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, location)
}
