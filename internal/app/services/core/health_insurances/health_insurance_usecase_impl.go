package healthInsurances

import (
	"clinic-bridge-service/internal/app/contracts"
	"clinic-bridge-service/internal/app/services/shared/mappers"
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
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

type healthInsuranceUsecase struct {
	UpstreamClient contracts.UpstreamClient
	Metrics        *metrics.UpstreamMetrics
	Log            *zap.Logger
}

func NewHealthInsuranceUsecase(
	upstreamClient contracts.UpstreamClient,
	upstreamMetrics *metrics.UpstreamMetrics,
	logger *zap.Logger,
) contracts.HealthInsuranceUsecase {
	return &healthInsuranceUsecase{
		UpstreamClient: upstreamClient,
		Metrics:        upstreamMetrics,
		Log:            logger,
	}
}

func (uc *healthInsuranceUsecase) FindAll(ctx context.Context, filter requests.HealthInsuranceFilter) ([]responses.HealthInsurance, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("healthInsuranceUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	if filter.Search != "" {
		query.Set("pesquisa", filter.Search)
	}
	if filter.Active != nil {
		query.Set("ativo", strconv.FormatBool(*filter.Active))
	}

	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodGet, constvars.UpstreamHealthInsuranceSearch, query, nil)
	if err != nil {
		resources.LogDegradedList(ctx, uc.Log, constvars.ResourceHealthInsurance, err)
		return []responses.HealthInsurance{}, utils.EmptyPage(filter.Pagination), nil
	}

	healthInsurances := resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourceHealthInsurance, records, mapHealthInsurance)
	healthInsurances = utils.FilterSlice(healthInsurances, func(healthInsurance responses.HealthInsurance) bool {
		if filter.Active != nil && healthInsurance.Active != *filter.Active {
			return false
		}
		return utils.ContainsFold(filter.Search, healthInsurance.Name, healthInsurance.RegistrationNumber)
	})
	page, pagination := utils.Paginate(healthInsurances, filter.Pagination)

	uc.Log.Info("healthInsuranceUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordsKey, pagination.TotalRecords),
	)
	return page, pagination, nil
}

func (uc *healthInsuranceUsecase) FindByID(ctx context.Context, healthInsuranceID string) (*responses.HealthInsurance, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("healthInsuranceUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("health_insurance_id", healthInsuranceID),
	)

	id, err := resources.ParseID(constvars.ResourceHealthInsurance, healthInsuranceID)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf(constvars.UpstreamHealthInsuranceByID, strconv.Itoa(id))
	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodGet, path, nil, nil)
	if err != nil {
		if resources.IsEmptyOrMissing(err) {
			return nil, nil
		}
		uc.Log.Error("healthInsuranceUsecase.FindByID error fetching health insurance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return resources.First(resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourceHealthInsurance, records, mapHealthInsurance)), nil
}

func mapHealthInsurance(record fieldmap.Record) (responses.HealthInsurance, error) {
	id := record.String("id", "idConvenio")
	if id == "" || id == "0" {
		return responses.HealthInsurance{}, exceptions.ErrMappingMissingID(constvars.ResourceHealthInsurance)
	}

	plans := mappers.MapNested(record.Records("planos"), mappers.MapPlan)
	for i := range plans {
		if plans[i].HealthInsuranceID == "" {
			plans[i].HealthInsuranceID = id
		}
	}

	return responses.HealthInsurance{
		ID:                 id,
		Name:               record.String("nome", "razaoSocial"),
		RegistrationNumber: record.String("cnpj", "registroAns"),
		Plans:              plans,
		Active:             record.BoolOr(true, "ativo"),
	}, nil
}
