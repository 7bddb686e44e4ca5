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

	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	Timeout         time.Duration
	ScheduleUsecase contracts.ScheduleUsecase
}

func NewScheduleController(logger *zap.Logger, internalConfig *config.InternalConfig, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		Timeout:         requestTimeout(internalConfig),
		ScheduleUsecase: scheduleUsecase,
	}
}

func (ctrl *ScheduleController) FindSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	requestID := utils.GetRequestID(ctx)
	ctrl.Log.Info("ScheduleController.FindSchedules called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	query := requests.ScheduleQuery{
		Start:             utils.FirstQuery(r, "start"),
		End:               utils.FirstQuery(r, "end"),
		ProfessionalID:    utils.FirstQuery(r, "professional"),
		ServiceID:         utils.FirstQuery(r, "service"),
		SpecialtyID:       utils.FirstQuery(r, "specialty"),
		LocationID:        utils.FirstQuery(r, "location"),
		HealthInsuranceID: utils.FirstQuery(r, "healthInsurance"),
		ClientID:          utils.FirstQuery(r, "client"),
		PlanID:            utils.FirstQuery(r, "plan"),
	}

	schedules, err := ctrl.ScheduleUsecase.FindSchedules(ctx, query)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "ScheduleController.FindSchedules", err)
		return
	}

	ctrl.Log.Info("ScheduleController.FindSchedules succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(schedules)),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, schedules)
}

func (ctrl *ScheduleController) FindAvailableSlots(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	ctrl.Log.Info("ScheduleController.FindAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	query := requests.AvailableSlotsQuery{
		Date:           utils.FirstQuery(r, "date"),
		ProfessionalID: utils.FirstQuery(r, "professionalId", "professional"),
		SpecialtyID:    utils.FirstQuery(r, "specialtyId", "specialty"),
		ProcedureID:    utils.FirstQuery(r, "procedureId", "procedure"),
	}

	slots, err := ctrl.ScheduleUsecase.FindAvailableSlots(ctx, query)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "ScheduleController.FindAvailableSlots", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, slots)
}
