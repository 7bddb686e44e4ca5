package professionals

import (
	"clinic-bridge-service/internal/app/services/shared/mappers"
	"clinic-bridge-service/internal/app/services/shared/resources"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/fieldmap"
	"clinic-bridge-service/internal/pkg/utils"
)

type professionalSearchPayload struct {
	IdProfissional  *int `json:"IdProfissional,omitempty"`
	IdUnidade       *int `json:"IdUnidade,omitempty"`
	IdConvenio      *int `json:"IdConvenio,omitempty"`
	IdEspecialidade *int `json:"IdEspecialidade,omitempty"`
	IdProcedimento  *int `json:"IdProcedimento,omitempty"`
}

func mapProfessional(record fieldmap.Record) (responses.Professional, error) {
	id := record.String("id", "idProfissional")
	if id == "" || id == "0" {
		return responses.Professional{}, exceptions.ErrMappingMissingID(constvars.ResourceProfessional)
	}
	return responses.Professional{
		ID:                  id,
		Name:                record.String("nome"),
		Email:               record.String("email"),
		Phone:               record.String("telefone", "celular"),
		CPF:                 record.String("cpf"),
		RegistrationNumber:  record.String("numeroConselho", "registro"),
		RegistrationCouncil: record.String("conselho"),
		Specialties:         mappers.MapNested(record.Records("especialidades"), mappers.MapSpecialty),
		Services:            mappers.MapNested(record.Records("procedimentos"), mappers.MapService),
		Active:              record.BoolOr(true, "ativo"),
	}, nil
}

// buildSearchPayload translates the filter ids. When the caller names no
// health insurance the configured default, if any, is sent instead.
func buildSearchPayload(filter requests.ProfessionalFilter, defaultHealthInsuranceID int) (*professionalSearchPayload, error) {
	var (
		payload professionalSearchPayload
		err     error
	)
	if payload.IdUnidade, err = resources.OptionalID(constvars.ResourceLocation, filter.LocationID); err != nil {
		return nil, err
	}
	if payload.IdEspecialidade, err = resources.OptionalID(constvars.ResourceSpecialty, filter.SpecialtyID); err != nil {
		return nil, err
	}
	if payload.IdProcedimento, err = resources.OptionalID(constvars.ResourceService, filter.ServiceID); err != nil {
		return nil, err
	}
	if payload.IdConvenio, err = resources.OptionalID(constvars.ResourceHealthInsurance, filter.HealthInsuranceID); err != nil {
		return nil, err
	}
	if payload.IdConvenio == nil && defaultHealthInsuranceID > 0 {
		payload.IdConvenio = &defaultHealthInsuranceID
	}
	return &payload, nil
}

func matchesSearch(professional responses.Professional, search string) bool {
	candidates := []string{professional.Name, professional.Email, professional.RegistrationNumber}
	for _, specialty := range professional.Specialties {
		candidates = append(candidates, specialty.Name)
	}
	return utils.ContainsFold(search, candidates...)
}
