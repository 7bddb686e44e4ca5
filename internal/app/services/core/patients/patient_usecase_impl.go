package patients

import (
	"clinic-bridge-service/internal/app/contracts"
	"clinic-bridge-service/internal/app/services/shared/resources"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/fieldmap"
	"clinic-bridge-service/internal/pkg/metrics"
	"clinic-bridge-service/internal/pkg/utils"
	"context"
	"fmt"

	"go.uber.org/zap"
)

type patientUsecase struct {
	UpstreamClient contracts.UpstreamClient
	Metrics        *metrics.UpstreamMetrics
	Log            *zap.Logger
}

func NewPatientUsecase(
	upstreamClient contracts.UpstreamClient,
	upstreamMetrics *metrics.UpstreamMetrics,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		UpstreamClient: upstreamClient,
		Metrics:        upstreamMetrics,
		Log:            logger,
	}
}

func (uc *patientUsecase) FindAll(ctx context.Context, filter requests.PatientFilter) ([]responses.Patient, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.search(ctx, filter)
	if err != nil {
		resources.LogDegradedList(ctx, uc.Log, constvars.ResourcePatient, err)
		return []responses.Patient{}, utils.EmptyPage(filter.Pagination), nil
	}

	page, pagination := utils.Paginate(patients, filter.Pagination)

	uc.Log.Info("patientUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordsKey, pagination.TotalRecords),
	)
	return page, pagination, nil
}

// Search answers the client lookup used by the aggregator. At least one
// criterion is required and results are capped; the pagination still counts
// every match.
func (uc *patientUsecase) Search(ctx context.Context, search requests.ClientSearch) ([]responses.Patient, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !search.HasCriteria() {
		return nil, nil, exceptions.ErrSearchCriteriaRequired()
	}
	if err := utils.ValidateStruct(search); err != nil {
		return nil, nil, exceptions.ErrInputValidation(err)
	}

	term := search.Search
	if term == "" {
		term = search.Phone
	}
	if term == "" {
		term = search.Email
	}

	patients, pagination, err := uc.FindAll(ctx, requests.PatientFilter{
		Pagination: requests.Pagination{Page: 1, PageSize: constvars.ClientSearchMaxItems},
		Search:     term,
		CPF:        search.CPF,
	})
	if err != nil {
		return nil, nil, err
	}
	return patients, pagination, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("patient_id", patientID),
	)

	id, err := resources.ParseID(constvars.ResourcePatient, patientID)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf(constvars.UpstreamPatientByID, fmt.Sprint(id))
	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodGet, path, nil, nil)
	if err != nil {
		if resources.IsEmptyOrMissing(err) {
			return nil, nil
		}
		uc.Log.Error("patientUsecase.FindByID error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	patients := resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourcePatient, records, mapPatient)
	if len(patients) == 0 {
		return nil, nil
	}
	return &patients[0], nil
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.PatientWrite) (*responses.Patient, error) {
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	request.ID = ""
	return uc.write(ctx, constvars.MethodPost, constvars.UpstreamPatientCreate, request)
}

func (uc *patientUsecase) Update(ctx context.Context, request *requests.PatientWrite) (*responses.Patient, error) {
	uc.Log.Info("patientUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("patient_id", request.ID),
	)
	if request.ID == "" {
		return nil, exceptions.ErrMissingParams("id")
	}
	return uc.write(ctx, constvars.MethodPut, constvars.UpstreamPatientUpdate, request)
}

func (uc *patientUsecase) write(ctx context.Context, method, path string, request *requests.PatientWrite) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)

	payload, err := buildWritePayload(request)
	if err != nil {
		return nil, err
	}

	raw, err := uc.UpstreamClient.Call(ctx, method, path, nil, payload)
	if err != nil {
		uc.Log.Error("patientUsecase.write upstream call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamPathKey, path),
			zap.Error(err),
		)
		return nil, err
	}

	record, err := fieldmap.DecodeRecord(raw)
	if err != nil {
		return nil, exceptions.ErrUpstreamDecode(err, path)
	}
	patient, err := mapPatient(record)
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (uc *patientUsecase) search(ctx context.Context, filter requests.PatientFilter) ([]responses.Patient, error) {
	// Free text is matched locally; only a complete CPF narrows the upstream search.
	payload := patientSearchPayload{Ativo: filter.Active}
	if cpf := utils.OnlyDigits(filter.CPF); len(cpf) == 11 {
		payload.Cpf = cpf
	}

	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodPost, constvars.UpstreamPatientSearch, nil, payload)
	if err != nil {
		return nil, err
	}

	patients := resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourcePatient, records, mapPatient)
	return utils.FilterSlice(patients, func(patient responses.Patient) bool {
		return matchesFilter(patient, filter)
	}), nil
}
