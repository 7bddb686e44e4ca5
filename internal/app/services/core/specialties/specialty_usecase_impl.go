package specialties

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

type specialtyUsecase struct {
	UpstreamClient contracts.UpstreamClient
	Metrics        *metrics.UpstreamMetrics
	Log            *zap.Logger
}

func NewSpecialtyUsecase(
	upstreamClient contracts.UpstreamClient,
	upstreamMetrics *metrics.UpstreamMetrics,
	logger *zap.Logger,
) contracts.SpecialtyUsecase {
	return &specialtyUsecase{
		UpstreamClient: upstreamClient,
		Metrics:        upstreamMetrics,
		Log:            logger,
	}
}

func (uc *specialtyUsecase) FindAll(ctx context.Context, filter requests.SpecialtyFilter) ([]responses.Specialty, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("specialtyUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	specialties, err := uc.fetchAll(ctx)
	if err != nil {
		resources.LogDegradedList(ctx, uc.Log, constvars.ResourceSpecialty, err)
		return []responses.Specialty{}, utils.EmptyPage(filter.Pagination), nil
	}

	specialties = utils.FilterSlice(specialties, func(specialty responses.Specialty) bool {
		return utils.ContainsFold(filter.Search, specialty.Name, specialty.Code)
	})
	page, pagination := utils.Paginate(specialties, filter.Pagination)
	return page, pagination, nil
}

// FindByID scans the full listing; the upstream has no lookup by id for specialties.
func (uc *specialtyUsecase) FindByID(ctx context.Context, specialtyID string) (*responses.Specialty, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("specialtyUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("specialty_id", specialtyID),
	)

	if _, err := resources.ParseID(constvars.ResourceSpecialty, specialtyID); err != nil {
		return nil, err
	}

	specialties, err := uc.fetchAll(ctx)
	if err != nil {
		if resources.IsEmptyOrMissing(err) {
			return nil, nil
		}
		return nil, err
	}

	return resources.First(utils.FilterSlice(specialties, func(specialty responses.Specialty) bool {
		return specialty.ID == specialtyID
	})), nil
}

func (uc *specialtyUsecase) fetchAll(ctx context.Context) ([]responses.Specialty, error) {
	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodPost, constvars.UpstreamSpecialtySearch, nil, struct{}{})
	if err != nil {
		return nil, err
	}
	return resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourceSpecialty, records, mappers.MapSpecialty), nil
}
