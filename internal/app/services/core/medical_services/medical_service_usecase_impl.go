package medicalServices

import (
	"clinic-bridge-service/internal/app/contracts"
	"clinic-bridge-service/internal/app/services/shared/mappers"
	"clinic-bridge-service/internal/app/services/shared/resources"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/fieldmap"
	"clinic-bridge-service/internal/pkg/metrics"
	"clinic-bridge-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type serviceSearchPayload struct {
	IdUnidade       *int `json:"IdUnidade,omitempty"`
	IdProfissional  *int `json:"IdProfissional,omitempty"`
	IdConvenio      *int `json:"IdConvenio,omitempty"`
	IdEspecialidade *int `json:"IdEspecialidade,omitempty"`
	IdPlano         *int `json:"IdPlano,omitempty"`
	IdPaciente      *int `json:"IdPaciente,omitempty"`
	IdProcedimento  *int `json:"IdProcedimento,omitempty"`
}

type medicalServiceUsecase struct {
	UpstreamClient contracts.UpstreamClient
	Metrics        *metrics.UpstreamMetrics
	Log            *zap.Logger
}

func NewMedicalServiceUsecase(
	upstreamClient contracts.UpstreamClient,
	upstreamMetrics *metrics.UpstreamMetrics,
	logger *zap.Logger,
) contracts.MedicalServiceUsecase {
	return &medicalServiceUsecase{
		UpstreamClient: upstreamClient,
		Metrics:        upstreamMetrics,
		Log:            logger,
	}
}

func (uc *medicalServiceUsecase) FindAll(ctx context.Context, filter requests.ServiceFilter) ([]responses.Service, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalServiceUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := buildSearchPayload(filter)
	if err != nil {
		return nil, nil, err
	}

	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodPost, constvars.UpstreamServiceSearch, nil, payload)
	if err != nil {
		resources.LogDegradedList(ctx, uc.Log, constvars.ResourceService, err)
		return []responses.Service{}, utils.EmptyPage(filter.Pagination), nil
	}

	if filter.Enabled != nil {
		records = utils.FilterSlice(records, func(record fieldmap.Record) bool {
			return record.BoolOr(true, "ativo") == *filter.Enabled
		})
	}

	services := resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourceService, records, mappers.MapService)
	services = utils.FilterSlice(services, func(service responses.Service) bool {
		return utils.ContainsFold(filter.Search, service.Name, service.Description)
	})
	page, pagination := utils.Paginate(services, filter.Pagination)
	return page, pagination, nil
}

func (uc *medicalServiceUsecase) FindByID(ctx context.Context, serviceID string) (*responses.Service, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalServiceUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("service_id", serviceID),
	)

	id, err := resources.ParseID(constvars.ResourceService, serviceID)
	if err != nil {
		return nil, err
	}

	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodPost, constvars.UpstreamServiceSearch, nil, &serviceSearchPayload{IdProcedimento: &id})
	if err != nil {
		if resources.IsEmptyOrMissing(err) {
			return nil, nil
		}
		uc.Log.Error("medicalServiceUsecase.FindByID error fetching service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return resources.First(resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourceService, records, mappers.MapService)), nil
}

func buildSearchPayload(filter requests.ServiceFilter) (*serviceSearchPayload, error) {
	var (
		payload serviceSearchPayload
		err     error
	)
	ids := []struct {
		resource string
		value    string
		target   **int
	}{
		{constvars.ResourceLocation, filter.LocationID, &payload.IdUnidade},
		{constvars.ResourceProfessional, filter.ProfessionalID, &payload.IdProfissional},
		{constvars.ResourceHealthInsurance, filter.HealthInsuranceID, &payload.IdConvenio},
		{constvars.ResourceSpecialty, filter.SpecialtyID, &payload.IdEspecialidade},
		{constvars.ResourcePlan, filter.PlanID, &payload.IdPlano},
		{constvars.ResourcePatient, filter.ClientID, &payload.IdPaciente},
	}
	for _, id := range ids {
		if *id.target, err = resources.OptionalID(id.resource, id.value); err != nil {
			return nil, err
		}
	}
	return &payload, nil
}
