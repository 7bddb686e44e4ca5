package controllers

import (
	"clinic-bridge-service/internal/app/config"
	"clinic-bridge-service/internal/app/contracts"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PatientController serves both the aggregator /clients routes and the
// legacy /patients routes over the same usecase.
type PatientController struct {
	Log            *zap.Logger
	Timeout        time.Duration
	PatientUsecase contracts.PatientUsecase
}

func NewPatientController(logger *zap.Logger, internalConfig *config.InternalConfig, patientUsecase contracts.PatientUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		Timeout:        requestTimeout(internalConfig),
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *PatientController) FindAllClients(w http.ResponseWriter, r *http.Request) {
	pagination, err := utils.BuildPaginationRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.findAll(w, r, "PatientController.FindAllClients", requests.PatientFilter{
		Pagination: pagination,
		Search:     utils.FirstQuery(r, "search"),
		CPF:        utils.FirstQuery(r, "cpf"),
		Active:     utils.QueryBool(r, "active"),
	})
}

func (ctrl *PatientController) FindAllPatients(w http.ResponseWriter, r *http.Request) {
	ctrl.findAll(w, r, "PatientController.FindAllPatients", requests.PatientFilter{
		Pagination: utils.BuildOffsetPaginationRequest(r),
		Search:     utils.FirstQuery(r, "search"),
	})
}

func (ctrl *PatientController) findAll(w http.ResponseWriter, r *http.Request, method string, filter requests.PatientFilter) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	requestID := utils.GetRequestID(ctx)
	ctrl.Log.Info(method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	patients, _, err := ctrl.PatientUsecase.FindAll(ctx, filter)
	if err != nil {
		handleError(ctx, ctrl.Log, w, method, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(patients)),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, patients)
}

func (ctrl *PatientController) SearchClients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	ctrl.Log.Info("PatientController.SearchClients called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	search := requests.ClientSearch{
		CPF:    utils.FirstQuery(r, "cpf"),
		Phone:  utils.FirstQuery(r, "telefone", "phone"),
		Email:  utils.FirstQuery(r, "email"),
		Search: utils.FirstQuery(r, "search"),
	}

	patients, pagination, err := ctrl.PatientUsecase.Search(ctx, search)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "PatientController.SearchClients", err)
		return
	}

	clients := make([]responses.ClientSummary, 0, len(patients))
	for _, patient := range patients {
		clients = append(clients, patient.ToClientSummary())
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, responses.ClientSearchResult{
		Success:   true,
		Total:     pagination.TotalRecords,
		Clients:   clients,
		Timestamp: utils.Timestamp(),
	})
}

func (ctrl *PatientController) FindClientByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	patientID := chi.URLParam(r, "id")
	ctrl.Log.Info("PatientController.FindClientByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("patient_id", patientID),
	)

	patient, err := ctrl.PatientUsecase.FindByID(ctx, patientID)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "PatientController.FindClientByID", err)
		return
	}
	if patient == nil {
		utils.BuildJSONResponse(w, constvars.StatusNotFound, responses.ClientDetailResult{
			Success:   false,
			Error:     "Cliente não encontrado",
			Timestamp: utils.Timestamp(),
		})
		return
	}

	detail := patient.ToClientDetail()
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.ClientDetailResult{
		Success:   true,
		Client:    &detail,
		Timestamp: utils.Timestamp(),
	})
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	patientID := chi.URLParam(r, "id")
	ctrl.Log.Info("PatientController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("patient_id", patientID),
	)

	patient, err := ctrl.PatientUsecase.FindByID(ctx, patientID)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "PatientController.FindByID", err)
		return
	}
	if patient == nil {
		renderNotFound(w, "Patient")
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, patient)
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	ctrl.Log.Info("PatientController.Create called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	request, err := ctrl.parseWriteRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	patient, err := ctrl.PatientUsecase.Create(ctx, request)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "PatientController.Create", err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusCreated, patient)
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	patientID := chi.URLParam(r, "id")
	ctrl.Log.Info("PatientController.Update called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("patient_id", patientID),
	)

	request, err := ctrl.parseWriteRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.ID = patientID

	patient, err := ctrl.PatientUsecase.Update(ctx, request)
	if err != nil {
		handleError(ctx, ctrl.Log, w, "PatientController.Update", err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, patient)
}

func (ctrl *PatientController) parseWriteRequest(r *http.Request) (*requests.PatientWrite, error) {
	request := new(requests.PatientWrite)
	if err := utils.ParseRequestBody(r, request); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return request, nil
}
