package schedules

import (
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/fieldmap"
	"clinic-bridge-service/internal/pkg/scheduling"
	"fmt"
	"net/url"
)

func mapSchedule(record fieldmap.Record) (responses.Schedule, error) {
	professionalID := record.String("profissionalId")
	date := scheduling.NormalizeDate(record.String("data"))
	if professionalID == "" || date == "" {
		return responses.Schedule{}, exceptions.ErrMappingMissingID(constvars.ResourceSchedule)
	}

	horarios := record.Records("horarios")
	slots := make([]scheduling.Slot, 0, len(horarios))
	for _, horario := range horarios {
		slots = append(slots, toSlot(horario))
	}

	return responses.Schedule{
		ID:               fmt.Sprintf("%s-%s", professionalID, date),
		ProfessionalID:   professionalID,
		ProfessionalName: record.String("profissionalNome"),
		Date:             date,
		Intervals:        scheduling.ComputeDaySlots(slots),
	}, nil
}

func toSlot(record fieldmap.Record) scheduling.Slot {
	duration, _ := record.Int("duracao")
	return scheduling.Slot{
		Time:      record.String("horario", "hora"),
		Available: record.BoolOr(false, "disponivel"),
		Duration:  duration,
	}
}

func mapTimeSlot(record fieldmap.Record) (responses.TimeSlot, error) {
	hour := record.String("horario", "hora")
	if _, err := scheduling.ParseTimeOfDay(hour); err != nil {
		return responses.TimeSlot{}, err
	}

	slot := responses.TimeSlot{
		Time:      scheduling.NormalizeTimeOfDay(hour),
		Available: record.BoolOr(false, "disponivel"),
	}
	if duration, ok := record.Int("duracao"); ok && duration > 0 {
		slot.Duration = &duration
	}
	return slot, nil
}

func buildScheduleQuery(query requests.ScheduleQuery) url.Values {
	values := url.Values{}
	values.Set("dataInicio", query.Start)
	values.Set("dataFim", query.End)
	setIfPresent(values, "profissionalId", query.ProfessionalID)
	setIfPresent(values, "procedimentoId", query.ServiceID)
	setIfPresent(values, "especialidadeId", query.SpecialtyID)
	setIfPresent(values, "unidadeId", query.LocationID)
	setIfPresent(values, "convenioId", query.HealthInsuranceID)
	setIfPresent(values, "pacienteId", query.ClientID)
	setIfPresent(values, "planoId", query.PlanID)
	return values
}

func buildAvailableSlotsQuery(query requests.AvailableSlotsQuery) url.Values {
	values := url.Values{}
	values.Set("data", query.Date)
	setIfPresent(values, "profissionalId", query.ProfessionalID)
	setIfPresent(values, "especialidadeId", query.SpecialtyID)
	setIfPresent(values, "procedimentoId", query.ProcedureID)
	return values
}

func setIfPresent(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}
