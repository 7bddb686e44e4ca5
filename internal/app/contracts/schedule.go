package contracts

import (
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"context"
)

type ScheduleUsecase interface {
	FindSchedules(ctx context.Context, query requests.ScheduleQuery) ([]responses.Schedule, error)
	FindAvailableSlots(ctx context.Context, query requests.AvailableSlotsQuery) ([]responses.TimeSlot, error)
}
