package locations

import (
	"clinic-bridge-service/internal/app/contracts"
	"clinic-bridge-service/internal/app/services/shared/resources"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/metrics"
	"clinic-bridge-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type locationUsecase struct {
	UpstreamClient contracts.UpstreamClient
	Metrics        *metrics.UpstreamMetrics
	Log            *zap.Logger
}

func NewLocationUsecase(
	upstreamClient contracts.UpstreamClient,
	upstreamMetrics *metrics.UpstreamMetrics,
	logger *zap.Logger,
) contracts.LocationUsecase {
	return &locationUsecase{
		UpstreamClient: upstreamClient,
		Metrics:        upstreamMetrics,
		Log:            logger,
	}
}

func (uc *locationUsecase) FindAll(ctx context.Context, filter requests.LocationFilter) ([]responses.Location, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("locationUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := buildSearchPayload(filter)
	if err != nil {
		return nil, nil, err
	}

	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodPost, constvars.UpstreamLocationSearch, nil, payload)
	if err != nil {
		resources.LogDegradedList(ctx, uc.Log, constvars.ResourceLocation, err)
		return []responses.Location{}, utils.EmptyPage(filter.Pagination), nil
	}

	locations := resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourceLocation, records, mapLocation)
	locations = utils.FilterSlice(locations, func(location responses.Location) bool {
		return utils.ContainsFold(filter.Search, location.Name, location.Address, location.City)
	})
	page, pagination := utils.Paginate(locations, filter.Pagination)

	uc.Log.Info("locationUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordsKey, pagination.TotalRecords),
	)
	return page, pagination, nil
}

func (uc *locationUsecase) FindByID(ctx context.Context, locationID string) (*responses.Location, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("locationUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("location_id", locationID),
	)

	id, err := resources.ParseID(constvars.ResourceLocation, locationID)
	if err != nil {
		return nil, err
	}

	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodPost, constvars.UpstreamLocationSearch, nil, &locationSearchPayload{IdUnidade: &id})
	if err != nil {
		if resources.IsEmptyOrMissing(err) {
			return nil, nil
		}
		uc.Log.Error("locationUsecase.FindByID error fetching location",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return resources.First(resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourceLocation, records, mapLocation)), nil
}
