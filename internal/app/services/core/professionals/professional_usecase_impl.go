package professionals

import (
	"clinic-bridge-service/internal/app/contracts"
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

type professionalUsecase struct {
	UpstreamClient           contracts.UpstreamClient
	Metrics                  *metrics.UpstreamMetrics
	DefaultHealthInsuranceID int
	Log                      *zap.Logger
}

func NewProfessionalUsecase(
	upstreamClient contracts.UpstreamClient,
	upstreamMetrics *metrics.UpstreamMetrics,
	defaultHealthInsuranceID int,
	logger *zap.Logger,
) contracts.ProfessionalUsecase {
	return &professionalUsecase{
		UpstreamClient:           upstreamClient,
		Metrics:                  upstreamMetrics,
		DefaultHealthInsuranceID: defaultHealthInsuranceID,
		Log:                      logger,
	}
}

func (uc *professionalUsecase) FindAll(ctx context.Context, filter requests.ProfessionalFilter) ([]responses.Professional, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("professionalUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := buildSearchPayload(filter, uc.DefaultHealthInsuranceID)
	if err != nil {
		return nil, nil, err
	}

	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodPost, constvars.UpstreamProfessionalSearch, nil, payload)
	if err != nil {
		resources.LogDegradedList(ctx, uc.Log, constvars.ResourceProfessional, err)
		return []responses.Professional{}, utils.EmptyPage(filter.Pagination), nil
	}

	if filter.Enabled != nil {
		records = utils.FilterSlice(records, func(record fieldmap.Record) bool {
			return record.BoolOr(true, "ativo") == *filter.Enabled
		})
	}

	professionals := resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourceProfessional, records, mapProfessional)
	professionals = utils.FilterSlice(professionals, func(professional responses.Professional) bool {
		return matchesSearch(professional, filter.Search)
	})
	page, pagination := utils.Paginate(professionals, filter.Pagination)

	uc.Log.Info("professionalUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordsKey, pagination.TotalRecords),
	)
	return page, pagination, nil
}

func (uc *professionalUsecase) FindByID(ctx context.Context, professionalID string) (*responses.Professional, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("professionalUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("professional_id", professionalID),
	)

	id, err := resources.ParseID(constvars.ResourceProfessional, professionalID)
	if err != nil {
		return nil, err
	}

	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodPost, constvars.UpstreamProfessionalSearch, nil, &professionalSearchPayload{IdProfissional: &id})
	if err != nil {
		if resources.IsEmptyOrMissing(err) {
			return nil, nil
		}
		uc.Log.Error("professionalUsecase.FindByID error fetching professional",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return resources.First(resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourceProfessional, records, mapProfessional)), nil
}
