package appointments

import (
	"clinic-bridge-service/internal/app/contracts"
	"clinic-bridge-service/internal/app/services/shared/resources"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/fieldmap"
	"clinic-bridge-service/internal/pkg/metrics"
	"clinic-bridge-service/internal/pkg/scheduling"
	"clinic-bridge-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	UpstreamClient contracts.UpstreamClient
	EventPublisher contracts.EventPublisher
	Metrics        *metrics.UpstreamMetrics
	Log            *zap.Logger
}

func NewAppointmentUsecase(
	upstreamClient contracts.UpstreamClient,
	eventPublisher contracts.EventPublisher,
	upstreamMetrics *metrics.UpstreamMetrics,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		UpstreamClient: upstreamClient,
		EventPublisher: eventPublisher,
		Metrics:        upstreamMetrics,
		Log:            logger,
	}
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, filter requests.AppointmentFilter) ([]responses.Appointment, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := buildSearchPayload(filter)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll invalid filter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodPost, constvars.UpstreamAppointmentSearch, nil, payload)
	if err != nil {
		resources.LogDegradedList(ctx, uc.Log, constvars.ResourceAppointment, err)
		return []responses.Appointment{}, utils.EmptyPage(filter.Pagination), nil
	}

	appointments := resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourceAppointment, records, mapAppointment)
	page, pagination := utils.Paginate(appointments, filter.Pagination)

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordsKey, pagination.TotalRecords),
	)
	return page, pagination, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
	)

	id, err := resources.ParseID(constvars.ResourceAppointment, appointmentID)
	if err != nil {
		return nil, err
	}

	records, err := resources.Fetch(ctx, uc.UpstreamClient, constvars.MethodPost, constvars.UpstreamAppointmentSearch, nil, &appointmentSearchPayload{IdAgendamento: &id})
	if err != nil {
		if resources.IsEmptyOrMissing(err) {
			return nil, nil
		}
		uc.Log.Error("appointmentUsecase.FindByID error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointments := resources.MapRecords(ctx, uc.Log, uc.Metrics, constvars.ResourceAppointment, records, mapAppointment)
	if len(appointments) == 0 {
		return nil, nil
	}
	return &appointments[0], nil
}

func (uc *appointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := buildSchedulePayload(request)
	if err != nil {
		return nil, err
	}

	raw, err := uc.UpstreamClient.Call(ctx, constvars.MethodPost, constvars.UpstreamAppointmentCreate, nil, payload)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error scheduling appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	record, err := fieldmap.DecodeRecord(raw)
	if err != nil {
		return nil, exceptions.ErrUpstreamDecode(err, constvars.UpstreamAppointmentCreate)
	}
	appointment, err := mapAppointment(record)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create upstream returned an unusable record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, constvars.EventAppointmentCreated, &appointment)

	uc.Log.Info("appointmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointment.ID),
	)
	return &appointment, nil
}

// UpdateStatus routes CONFIRMED to the dedicated confirmation endpoint and every
// other state to the generic status update.
func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID, state string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
		zap.String("state", state),
	)

	code, err := scheduling.ToUpstreamState(state)
	if err != nil {
		return nil, err
	}
	id, err := resources.ParseID(constvars.ResourceAppointment, appointmentID)
	if err != nil {
		return nil, err
	}

	path := constvars.UpstreamAppointmentUpdateStatus
	payload := appointmentStatusPayload{IdAgendamento: id, Status: code}
	if code == scheduling.UpstreamConfirmed {
		path = constvars.UpstreamAppointmentConfirm
		payload = appointmentStatusPayload{IdAgendamento: id}
	}

	raw, err := uc.UpstreamClient.Call(ctx, constvars.MethodPost, path, nil, payload)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateStatus error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment, err := uc.resolveMutation(ctx, raw, path, appointmentID)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, constvars.EventAppointmentStatusChanged, appointment)
	return appointment, nil
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, appointmentID, reason string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
	)

	id, err := resources.ParseID(constvars.ResourceAppointment, appointmentID)
	if err != nil {
		return nil, err
	}

	raw, err := uc.UpstreamClient.Call(ctx, constvars.MethodPost, constvars.UpstreamAppointmentCancel, nil, appointmentCancelPayload{IdAgendamento: id, Motivo: reason})
	if err != nil {
		uc.Log.Error("appointmentUsecase.Cancel error cancelling appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment, err := uc.resolveMutation(ctx, raw, constvars.UpstreamAppointmentCancel, appointmentID)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, constvars.EventAppointmentCancelled, appointment)
	return appointment, nil
}

// resolveMutation maps the record returned by a status mutation. Some upstream
// builds answer with a bare acknowledgement, in which case the appointment is
// read back by id.
func (uc *appointmentUsecase) resolveMutation(ctx context.Context, raw []byte, path, appointmentID string) (*responses.Appointment, error) {
	record, err := fieldmap.DecodeRecord(raw)
	if err != nil {
		return nil, exceptions.ErrUpstreamDecode(err, path)
	}
	if appointment, err := mapAppointment(record); err == nil {
		return &appointment, nil
	}

	appointment, err := uc.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrNotFound(constvars.ResourceAppointment, appointmentID)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) publish(ctx context.Context, event string, appointment *responses.Appointment) {
	if uc.EventPublisher == nil {
		return
	}
	if err := uc.EventPublisher.Publish(ctx, event, appointment); err != nil {
		uc.Log.Error("appointmentUsecase failed to publish event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String("event", event),
			zap.Error(err),
		)
	}
}
