package plans

import (
	"clinic-bridge-service/internal/app/contracts"
	"clinic-bridge-service/internal/app/services/shared/mappers"
	"clinic-bridge-service/internal/app/services/shared/resources"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/metrics"
	"clinic-bridge-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type planSearchPayload struct {
	IdConvenio     *int `json:"IdConvenio,omitempty"`
	IdUnidade      *int `json:"IdUnidade,omitempty"`
	IdProfissional *int `json:"IdProfissional,omitempty"`
	IdPlano        *int `json:"IdPlano,omitempty"`
}

type planUsecase struct {
	UpstreamClient contracts.UpstreamClient
	Metrics        *metrics.UpstreamMetrics
	Log            *zap.Logger
}

func NewPlanUsecase(
	upstreamClient contracts.UpstreamClient,
	upstreamMetrics *metrics.UpstreamMetrics,
	logger *zap.Logger,
) contracts.PlanUsecase {
	return &planUsecase{
		UpstreamClient: upstreamClient,
		Metrics:        upstreamMetrics,
		Log:            logger,
	}
}

func (uc *planUsecase) FindAll(ctx context.Context, filter requests.PlanFilter) ([]responses.Plan, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("planUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := buildSearchPayload(filter)
	if err != nil {
		return nil, nil, err
	}

	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodPost, constvars.UpstreamPlanSearch, nil, payload)
	if err != nil {
		resources.LogDegradedList(ctx, uc.Log, constvars.ResourcePlan, err)
		return []responses.Plan{}, utils.EmptyPage(filter.Pagination), nil
	}

	plans := resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourcePlan, records, mappers.MapPlan)
	for i := range plans {
		if plans[i].HealthInsuranceID == "" {
			plans[i].HealthInsuranceID = filter.HealthInsuranceID
		}
	}
	plans = utils.FilterSlice(plans, func(plan responses.Plan) bool {
		return utils.ContainsFold(filter.Search, plan.Name, plan.Code)
	})
	page, pagination := utils.Paginate(plans, filter.Pagination)
	return page, pagination, nil
}

func (uc *planUsecase) FindByID(ctx context.Context, planID string) (*responses.Plan, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("planUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("plan_id", planID),
	)

	id, err := resources.ParseID(constvars.ResourcePlan, planID)
	if err != nil {
		return nil, err
	}

	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodPost, constvars.UpstreamPlanSearch, nil, &planSearchPayload{IdPlano: &id})
	if err != nil {
		if resources.IsEmptyOrMissing(err) {
			return nil, nil
		}
		uc.Log.Error("planUsecase.FindByID error fetching plan",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return resources.First(resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourcePlan, records, mappers.MapPlan)), nil
}

func buildSearchPayload(filter requests.PlanFilter) (*planSearchPayload, error) {
	healthInsuranceID, err := resources.OptionalID(constvars.ResourceHealthInsurance, filter.HealthInsuranceID)
	if err != nil {
		return nil, err
	}
	locationID, err := resources.OptionalID(constvars.ResourceLocation, filter.LocationID)
	if err != nil {
		return nil, err
	}
	professionalID, err := resources.OptionalID(constvars.ResourceProfessional, filter.ProfessionalID)
	if err != nil {
		return nil, err
	}
	return &planSearchPayload{
		IdConvenio:     healthInsuranceID,
		IdUnidade:      locationID,
		IdProfissional: professionalID,
	}, nil
}
