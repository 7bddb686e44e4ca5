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

type ProfessionalController struct {
	Log                 *zap.Logger
	Timeout             time.Duration
	ProfessionalUsecase contracts.ProfessionalUsecase
}

func NewProfessionalController(logger *zap.Logger, internalConfig *config.InternalConfig, professionalUsecase contracts.ProfessionalUsecase) *ProfessionalController {
	return &ProfessionalController{
		Log:                 logger,
		Timeout:             requestTimeout(internalConfig),
		ProfessionalUsecase: professionalUsecase,
	}
}

func (ctrl *ProfessionalController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	requestID := utils.GetRequestID(ctx)
	ctrl.Log.Info("ProfessionalController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	pagination, err := utils.BuildPaginationRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	filter := requests.ProfessionalFilter{
		Pagination:        pagination,
		Search:            utils.FirstQuery(r, "search"),
		SpecialtyID:       utils.FirstQuery(r, "specialty"),
		LocationID:        utils.FirstQuery(r, "location"),
		HealthInsuranceID: utils.FirstQuery(r, "healthInsurance"),
		ServiceID:         utils.FirstQuery(r, "service"),
		Enabled:           utils.QueryBool(r, "enabled"),
	}

	professionals, _, err := ctrl.ProfessionalUsecase.FindAll(ctx, filter)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "ProfessionalController.FindAll", err)
		return
	}

	ctrl.Log.Info("ProfessionalController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(professionals)),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, professionals)
}

func (ctrl *ProfessionalController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	professionalID := chi.URLParam(r, "id")
	ctrl.Log.Info("ProfessionalController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("professional_id", professionalID),
	)

	professional, err := ctrl.ProfessionalUsecase.FindByID(ctx, professionalID)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "ProfessionalController.FindByID", err)
		return
	}
	if professional == nil {
		renderNotFound(w, "Professional")
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, professional)
}
