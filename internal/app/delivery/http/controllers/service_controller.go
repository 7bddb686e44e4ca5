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

type MedicalServiceController struct {
	Log                   *zap.Logger
	Timeout               time.Duration
	MedicalServiceUsecase contracts.MedicalServiceUsecase
}

func NewMedicalServiceController(logger *zap.Logger, internalConfig *config.InternalConfig, medicalServiceUsecase contracts.MedicalServiceUsecase) *MedicalServiceController {
	return &MedicalServiceController{
		Log:                   logger,
		Timeout:               requestTimeout(internalConfig),
		MedicalServiceUsecase: medicalServiceUsecase,
	}
}

func (ctrl *MedicalServiceController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	requestID := utils.GetRequestID(ctx)
	ctrl.Log.Info("MedicalServiceController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	pagination, err := utils.BuildPaginationRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	filter := requests.ServiceFilter{
		Pagination:        pagination,
		Search:            utils.FirstQuery(r, "search"),
		LocationID:        utils.FirstQuery(r, "location"),
		ProfessionalID:    utils.FirstQuery(r, "professional"),
		HealthInsuranceID: utils.FirstQuery(r, "healthInsurance"),
		SpecialtyID:       utils.FirstQuery(r, "specialty"),
		PlanID:            utils.FirstQuery(r, "plan"),
		ClientID:          utils.FirstQuery(r, "client"),
		Enabled:           utils.QueryBool(r, "enabled"),
	}

	services, _, err := ctrl.MedicalServiceUsecase.FindAll(ctx, filter)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "MedicalServiceController.FindAll", err)
		return
	}

	ctrl.Log.Info("MedicalServiceController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(services)),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, services)
}

func (ctrl *MedicalServiceController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	serviceID := chi.URLParam(r, "id")
	ctrl.Log.Info("MedicalServiceController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("service_id", serviceID),
	)

	service, err := ctrl.MedicalServiceUsecase.FindByID(ctx, serviceID)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "MedicalServiceController.FindByID", err)
		return
	}
	if service == nil {
		renderNotFound(w, "Service")
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, service)
}
