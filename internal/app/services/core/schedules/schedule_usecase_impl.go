package schedules

import (
	"clinic-bridge-service/internal/app/contracts"
	"clinic-bridge-service/internal/app/services/shared/resources"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/metrics"
	"clinic-bridge-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	UpstreamClient contracts.UpstreamClient
	Metrics        *metrics.UpstreamMetrics
	Log            *zap.Logger
}

func NewScheduleUsecase(
	upstreamClient contracts.UpstreamClient,
	upstreamMetrics *metrics.UpstreamMetrics,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		UpstreamClient: upstreamClient,
		Metrics:        upstreamMetrics,
		Log:            logger,
	}
}

// FindSchedules lists the open intervals per professional and day between
// query.Start and query.End.
func (uc *scheduleUsecase) FindSchedules(ctx context.Context, query requests.ScheduleQuery) ([]responses.Schedule, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.FindSchedules called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if query.Start == "" || query.End == "" {
		return nil, exceptions.ErrMissingParams("start", "end")
	}

	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodGet, constvars.UpstreamScheduleHours, buildScheduleQuery(query), nil)
	if err != nil {
		resources.LogDegradedList(ctx, uc.Log, constvars.ResourceSchedule, err)
		return []responses.Schedule{}, nil
	}

	schedules := resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourceSchedule, records, mapSchedule)

	uc.Log.Info("scheduleUsecase.FindSchedules succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordsKey, len(schedules)),
	)
	return schedules, nil
}

func (uc *scheduleUsecase) FindAvailableSlots(ctx context.Context, query requests.AvailableSlotsQuery) ([]responses.TimeSlot, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.FindAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if query.Date == "" {
		return nil, exceptions.ErrMissingParams("date")
	}

	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodGet, constvars.UpstreamScheduleAvailable, buildAvailableSlotsQuery(query), nil)
	if err != nil {
		resources.LogDegradedList(ctx, uc.Log, constvars.ResourceSchedule, err)
		return []responses.TimeSlot{}, nil
	}

	return resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourceSchedule, records, mapTimeSlot), nil
}
