package contracts

import (
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentUsecase interface {
	FindAll(ctx context.Context, filter requests.AppointmentFilter) ([]responses.Appointment, *responses.Pagination, error)
	FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	Create(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, state string) (*responses.Appointment, error)
	Cancel(ctx context.Context, appointmentID, reason string) (*responses.Appointment, error)
}
