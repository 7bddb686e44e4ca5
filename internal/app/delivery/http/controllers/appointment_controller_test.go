package controllers

import (
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/scheduling"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAppointmentUsecase struct {
	appointments []responses.Appointment
	appointment  *responses.Appointment
	err          error

	lastFilter requests.AppointmentFilter
	lastCreate *requests.CreateAppointment
	lastID     string
	lastState  string
	lastReason string
}

func (s *stubAppointmentUsecase) FindAll(ctx context.Context, filter requests.AppointmentFilter) ([]responses.Appointment, *responses.Pagination, error) {
	s.lastFilter = filter
	return s.appointments, &responses.Pagination{}, s.err
}

func (s *stubAppointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	s.lastID = appointmentID
	return s.appointment, s.err
}

func (s *stubAppointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	s.lastCreate = request
	return s.appointment, s.err
}

func (s *stubAppointmentUsecase) UpdateStatus(ctx context.Context, appointmentID, state string) (*responses.Appointment, error) {
	s.lastID, s.lastState = appointmentID, state
	return s.appointment, s.err
}

func (s *stubAppointmentUsecase) Cancel(ctx context.Context, appointmentID, reason string) (*responses.Appointment, error) {
	s.lastID, s.lastReason = appointmentID, reason
	return s.appointment, s.err
}

func newAppointmentRouter(usecase *stubAppointmentUsecase) *chi.Mux {
	ctrl := NewAppointmentController(zap.NewNop(), nil, usecase)
	router := chi.NewRouter()
	router.Get("/appointments", ctrl.FindAll)
	router.Get("/appointments/{id}", ctrl.FindByID)
	router.Post("/appointments", ctrl.Create)
	router.Patch("/appointments/{id}/status", ctrl.UpdateStatus)
	router.Post("/appointments/{id}/cancel", ctrl.Cancel)
	return router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeErrorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope responses.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	return envelope.Error.Code
}

func TestAppointmentControllerFindAll(t *testing.T) {
	t.Run("reads aliases and answers with a bare array", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{appointments: []responses.Appointment{{ID: "1", State: scheduling.StateWaiting}}}

		recorder := serve(newAppointmentRouter(usecase), http.MethodGet, "/appointments?patientId=7&professionalId=9&startDate=2024-05-01&endDate=2024-05-31&state=CONFIRMED&page=2&pageSize=5", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		var body []responses.Appointment
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "1", body[0].ID)

		assert.Equal(t, "7", usecase.lastFilter.ClientID)
		assert.Equal(t, "9", usecase.lastFilter.ProfessionalID)
		assert.Equal(t, "2024-05-01", usecase.lastFilter.Start)
		assert.Equal(t, "2024-05-31", usecase.lastFilter.End)
		assert.Equal(t, "CONFIRMED", usecase.lastFilter.State)
		assert.Equal(t, 2, usecase.lastFilter.Page)
		assert.Equal(t, 5, usecase.lastFilter.PageSize)
	})

	t.Run("rejects an invalid page", func(t *testing.T) {
		recorder := serve(newAppointmentRouter(&stubAppointmentUsecase{}), http.MethodGet, "/appointments?page=0", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, constvars.ErrCodeInvalidPage, decodeErrorCode(t, recorder))
	})

	t.Run("renders an invalid state", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{err: exceptions.ErrInvalidStatus("bogus")}

		recorder := serve(newAppointmentRouter(usecase), http.MethodGet, "/appointments?state=bogus", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, constvars.ErrCodeInvalidStatus, decodeErrorCode(t, recorder))
	})
}

func TestAppointmentControllerFindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{appointment: &responses.Appointment{ID: "42"}}

		recorder := serve(newAppointmentRouter(usecase), http.MethodGet, "/appointments/42", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "42", usecase.lastID)
	})

	t.Run("missing", func(t *testing.T) {
		recorder := serve(newAppointmentRouter(&stubAppointmentUsecase{}), http.MethodGet, "/appointments/42", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		var body responses.NotFound
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "Appointment not found", body.Error)
	})
}

func TestAppointmentControllerCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{appointment: &responses.Appointment{ID: "100"}}

		recorder := serve(newAppointmentRouter(usecase), http.MethodPost, "/appointments",
			`{"date":"2024-05-10","hour":"09:00","client":{"id":"7"},"professional":{"id":"9"}}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		require.NotNil(t, usecase.lastCreate)
		assert.Equal(t, "7", usecase.lastCreate.Client.ID)
		require.NotNil(t, usecase.lastCreate.Professional)
		assert.Equal(t, "9", usecase.lastCreate.Professional.ID)
	})

	t.Run("invalid body", func(t *testing.T) {
		recorder := serve(newAppointmentRouter(&stubAppointmentUsecase{}), http.MethodPost, "/appointments", `{"date":`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, constvars.ErrCodeInvalidBody, decodeErrorCode(t, recorder))
	})

	t.Run("missing hour", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{}

		recorder := serve(newAppointmentRouter(usecase), http.MethodPost, "/appointments",
			`{"date":"2024-05-10","client":{"id":"7"}}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, constvars.ErrCodeValidation, decodeErrorCode(t, recorder))
		assert.Nil(t, usecase.lastCreate)
	})

	t.Run("upstream failure", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{err: exceptions.ErrUpstreamUnavailable(errors.New("connection refused"))}

		recorder := serve(newAppointmentRouter(usecase), http.MethodPost, "/appointments",
			`{"date":"2024-05-10","hour":"09:00","client":{"id":"7"}}`)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})
}

func TestAppointmentControllerUpdateStatus(t *testing.T) {
	t.Run("forwards the state", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{appointment: &responses.Appointment{ID: "42", State: scheduling.StateConfirmed}}

		recorder := serve(newAppointmentRouter(usecase), http.MethodPatch, "/appointments/42/status", `{"state":"CONFIRMED"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "42", usecase.lastID)
		assert.Equal(t, "CONFIRMED", usecase.lastState)
	})

	t.Run("state is required", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{}

		recorder := serve(newAppointmentRouter(usecase), http.MethodPatch, "/appointments/42/status", `{}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, constvars.ErrCodeMissingParams, decodeErrorCode(t, recorder))
		assert.Empty(t, usecase.lastID)
	})
}

func TestAppointmentControllerCancel(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{appointment: &responses.Appointment{ID: "42", State: scheduling.StateCancelled}}

		recorder := serve(newAppointmentRouter(usecase), http.MethodPost, "/appointments/42/cancel", `{"reason":"patient request"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "patient request", usecase.lastReason)
	})

	t.Run("without body", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{appointment: &responses.Appointment{ID: "42"}}

		recorder := serve(newAppointmentRouter(usecase), http.MethodPost, "/appointments/42/cancel", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, usecase.lastReason)
	})

	t.Run("not found", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{err: exceptions.ErrNotFound(constvars.ResourceAppointment, "42")}

		recorder := serve(newAppointmentRouter(usecase), http.MethodPost, "/appointments/42/cancel", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
