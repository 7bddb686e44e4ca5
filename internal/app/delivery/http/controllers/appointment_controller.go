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

type AppointmentController struct {
	Log                *zap.Logger
	Timeout            time.Duration
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, internalConfig *config.InternalConfig, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		Timeout:            requestTimeout(internalConfig),
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	requestID := utils.GetRequestID(ctx)
	ctrl.Log.Info("AppointmentController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	pagination, err := utils.BuildPaginationRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	filter := requests.AppointmentFilter{
		Pagination:     pagination,
		ClientID:       utils.FirstQuery(r, "client", "patientId"),
		ProfessionalID: utils.FirstQuery(r, "professional", "professionalId"),
		Start:          utils.FirstQuery(r, "start", "startDate"),
		End:            utils.FirstQuery(r, "end", "endDate"),
		State:          utils.FirstQuery(r, "state"),
		Status:         utils.FirstQuery(r, "status"),
	}

	appointments, _, err := ctrl.AppointmentUsecase.FindAll(ctx, filter)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "AppointmentController.FindAll", err)
		return
	}

	ctrl.Log.Info("AppointmentController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(appointments)),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, appointments)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	appointmentID := chi.URLParam(r, "id")
	ctrl.Log.Info("AppointmentController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("appointment_id", appointmentID),
	)

	appointment, err := ctrl.AppointmentUsecase.FindByID(ctx, appointmentID)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "AppointmentController.FindByID", err)
		return
	}
	if appointment == nil {
		renderNotFound(w, "Appointment")
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, appointment)
}

func (ctrl *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	requestID := utils.GetRequestID(ctx)
	ctrl.Log.Info("AppointmentController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateAppointment)
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	appointment, err := ctrl.AppointmentUsecase.Create(ctx, request)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "AppointmentController.Create", err)
		return
	}

	ctrl.Log.Info("AppointmentController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointment.ID),
	)
	utils.BuildJSONResponse(w, constvars.StatusCreated, appointment)
}

func (ctrl *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	appointmentID := chi.URLParam(r, "id")
	ctrl.Log.Info("AppointmentController.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("appointment_id", appointmentID),
	)

	request := new(requests.UpdateAppointmentStatus)
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if request.State == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingParams("state"))
		return
	}

	appointment, err := ctrl.AppointmentUsecase.UpdateStatus(ctx, appointmentID, request.State)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "AppointmentController.UpdateStatus", err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, appointment)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	appointmentID := chi.URLParam(r, "id")
	ctrl.Log.Info("AppointmentController.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("appointment_id", appointmentID),
	)

	request := new(requests.CancelAppointment)
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointment, err := ctrl.AppointmentUsecase.Cancel(ctx, appointmentID, request.Reason)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "AppointmentController.Cancel", err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, appointment)
}
