package locations

import (
	"clinic-bridge-service/internal/app/services/shared/resources"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/fieldmap"
	"strings"
)

type locationSearchPayload struct {
	IdEspecialidade *int `json:"IdEspecialidade,omitempty"`
	IdProfissional  *int `json:"IdProfissional,omitempty"`
	IdUnidade       *int `json:"IdUnidade,omitempty"`
}

func mapLocation(record fieldmap.Record) (responses.Location, error) {
	id := record.String("id", "idUnidade")
	if id == "" || id == "0" {
		return responses.Location{}, exceptions.ErrMappingMissingID(constvars.ResourceLocation)
	}
	return responses.Location{
		ID:      id,
		Name:    record.String("nome", "nomeFantasia"),
		Address: composeAddress(record),
		City:    record.String("cidade"),
		State:   record.String("estado", "uf"),
		ZipCode: record.String("cep"),
		Phone:   record.String("telefone"),
		Email:   record.String("email"),
		Active:  record.BoolOr(true, "ativo"),
	}, nil
}

// composeAddress joins street, number, complement and neighborhood with
// ", ", skipping the empty parts.
func composeAddress(record fieldmap.Record) string {
	parts := make([]string, 0, 4)
	for _, key := range []string{"endereco", "numero", "complemento", "bairro"} {
		if part := strings.TrimSpace(record.String(key)); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func buildSearchPayload(filter requests.LocationFilter) (*locationSearchPayload, error) {
	specialtyID, err := resources.OptionalID(constvars.ResourceSpecialty, filter.SpecialtyID)
	if err != nil {
		return nil, err
	}
	professionalID, err := resources.OptionalID(constvars.ResourceProfessional, filter.ProfessionalID)
	if err != nil {
		return nil, err
	}
	return &locationSearchPayload{IdEspecialidade: specialtyID, IdProfissional: professionalID}, nil
}
