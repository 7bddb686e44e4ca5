package appointments

import (
	"clinic-bridge-service/internal/app/services/shared/resources"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/fieldmap"
	"clinic-bridge-service/internal/pkg/scheduling"
)

type appointmentSearchPayload struct {
	IdAgendamento  *int   `json:"IdAgendamento,omitempty"`
	IdPaciente     *int   `json:"IdPaciente,omitempty"`
	IdProfissional *int   `json:"IdProfissional,omitempty"`
	DataInicio     string `json:"DataInicio,omitempty"`
	DataFim        string `json:"DataFim,omitempty"`
	Status         string `json:"Status,omitempty"`
}

type scheduleAppointmentPayload struct {
	PacienteID     int    `json:"pacienteId"`
	ProfissionalID int    `json:"profissionalId"`
	ProcedimentoID *int   `json:"procedimentoId,omitempty"`
	Data           string `json:"data"`
	Horario        string `json:"horario"`
	Observacoes    string `json:"observacoes,omitempty"`
	ConvenioID     *int   `json:"convenioId,omitempty"`
	PlanoID        *int   `json:"planoId,omitempty"`
	UnidadeID      *int   `json:"unidadeId,omitempty"`
}

type appointmentStatusPayload struct {
	IdAgendamento int    `json:"IdAgendamento"`
	Status        string `json:"Status,omitempty"`
}

type appointmentCancelPayload struct {
	IdAgendamento int    `json:"IdAgendamento"`
	Motivo        string `json:"Motivo,omitempty"`
}

func mapAppointment(record fieldmap.Record) (responses.Appointment, error) {
	id := record.String("id", "idAgendamento")
	if id == "" || id == "0" {
		return responses.Appointment{}, exceptions.ErrMappingMissingID(constvars.ResourceAppointment)
	}

	hour := scheduling.NormalizeTimeOfDay(record.String("horario", "hora"))
	appointment := responses.Appointment{
		ID:             id,
		Date:           scheduling.NormalizeDate(record.String("data")),
		Hour:           hour,
		State:          scheduling.ToCanonicalState(record.String("status")),
		Classification: record.String("classificacao", "observacoes"),
		Notes:          record.String("observacoes"),
		Client: responses.AppointmentClient{
			ID:    record.String("pacienteId"),
			Name:  record.String("pacienteNome"),
			Phone: record.String("pacienteTelefone", "pacienteCelular"),
		},
		Professional:    reference(record, "profissionalId", "profissionalNome"),
		Service:         reference(record, "procedimentoId", "procedimentoNome"),
		Specialty:       reference(record, "especialidadeId", "especialidadeNome"),
		Location:        reference(record, "unidadeId", "unidadeNome"),
		HealthInsurance: reference(record, "convenioId", "convenioNome"),
		Plan:            reference(record, "planoId", "planoNome"),
	}

	if duration, ok := record.Int("duracao"); ok && duration > 0 && hour != "" {
		if endHour, err := scheduling.AddMinutes(hour, duration); err == nil {
			appointment.EndHour = endHour
		}
	}

	return appointment, nil
}

func reference(record fieldmap.Record, idKey, nameKey string) *responses.Reference {
	id := record.String(idKey)
	if id == "" || id == "0" {
		return nil
	}
	return &responses.Reference{ID: id, Name: record.String(nameKey)}
}

func buildSearchPayload(filter requests.AppointmentFilter) (*appointmentSearchPayload, error) {
	clientID, err := resources.OptionalID(constvars.ResourcePatient, filter.ClientID)
	if err != nil {
		return nil, err
	}
	professionalID, err := resources.OptionalID(constvars.ResourceProfessional, filter.ProfessionalID)
	if err != nil {
		return nil, err
	}

	payload := &appointmentSearchPayload{
		IdPaciente:     clientID,
		IdProfissional: professionalID,
		DataInicio:     filter.Start,
		DataFim:        filter.End,
		Status:         filter.Status,
	}
	if filter.State != "" {
		code, err := scheduling.ToUpstreamState(filter.State)
		if err != nil {
			return nil, err
		}
		payload.Status = code
	}
	return payload, nil
}

func buildSchedulePayload(request *requests.CreateAppointment) (*scheduleAppointmentPayload, error) {
	clientID, err := resources.ParseID(constvars.ResourcePatient, request.Client.ID)
	if err != nil {
		return nil, err
	}

	payload := &scheduleAppointmentPayload{
		PacienteID:  clientID,
		Data:        request.Date,
		Horario:     request.Hour,
		Observacoes: request.Notes,
	}

	if request.Professional != nil {
		professionalID, err := resources.ParseID(constvars.ResourceProfessional, request.Professional.ID)
		if err != nil {
			return nil, err
		}
		payload.ProfissionalID = professionalID
	}
	if payload.ProcedimentoID, err = optionalRef(constvars.ResourceService, request.Service); err != nil {
		return nil, err
	}
	if payload.ConvenioID, err = optionalRef(constvars.ResourceHealthInsurance, request.HealthInsurance); err != nil {
		return nil, err
	}
	if payload.PlanoID, err = optionalRef(constvars.ResourcePlan, request.Plan); err != nil {
		return nil, err
	}
	if payload.UnidadeID, err = optionalRef(constvars.ResourceLocation, request.Location); err != nil {
		return nil, err
	}
	return payload, nil
}

func optionalRef(resource string, ref *requests.EntityRef) (*int, error) {
	if ref == nil {
		return nil, nil
	}
	return resources.OptionalID(resource, ref.ID)
}
