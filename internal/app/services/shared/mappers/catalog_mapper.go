// Package mappers holds the record mappers shared by several catalog
// resources: specialties, services and plans appear both on their own and
// nested inside professionals and health insurances.
package mappers

import (
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/fieldmap"
)

func recordID(record fieldmap.Record, keys ...string) string {
	id := record.String(keys...)
	if id == "0" {
		return ""
	}
	return id
}

func MapSpecialty(record fieldmap.Record) (responses.Specialty, error) {
	id := recordID(record, "id", "idEspecialidade")
	if id == "" {
		return responses.Specialty{}, exceptions.ErrMappingMissingID(constvars.ResourceSpecialty)
	}
	return responses.Specialty{
		ID:   id,
		Name: record.String("nome", "descricao"),
		Code: record.String("codigo"),
	}, nil
}

func MapService(record fieldmap.Record) (responses.Service, error) {
	id := recordID(record, "id", "idProcedimento")
	if id == "" {
		return responses.Service{}, exceptions.ErrMappingMissingID(constvars.ResourceService)
	}

	service := responses.Service{
		ID:          id,
		Name:        record.String("nome"),
		Description: record.String("descricao"),
		Preparation: record.String("preparacao"),
	}
	if price, ok := record.Float("valor", "preco"); ok {
		service.Price = &price
	}
	if duration, ok := record.Int("duracao"); ok && duration > 0 {
		service.Duration = &duration
	}
	return service, nil
}

func MapPlan(record fieldmap.Record) (responses.Plan, error) {
	id := recordID(record, "id", "idPlano")
	if id == "" {
		return responses.Plan{}, exceptions.ErrMappingMissingID(constvars.ResourcePlan)
	}
	return responses.Plan{
		ID:                id,
		Name:              record.String("nome"),
		Code:              record.String("codigo"),
		Type:              record.String("tipo"),
		HealthInsuranceID: recordID(record, "convenioId", "idConvenio"),
		Active:            record.BoolOr(true, "ativo"),
	}, nil
}

// MapNested maps a nested list, silently skipping entries without an id.
func MapNested[T any](records []fieldmap.Record, mapper func(fieldmap.Record) (T, error)) []T {
	mapped := make([]T, 0, len(records))
	for _, record := range records {
		item, err := mapper(record)
		if err != nil {
			continue
		}
		mapped = append(mapped, item)
	}
	return mapped
}
