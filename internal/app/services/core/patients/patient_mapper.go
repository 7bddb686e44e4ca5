package patients

import (
	"clinic-bridge-service/internal/app/services/shared/resources"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/fieldmap"
	"clinic-bridge-service/internal/pkg/scheduling"
	"clinic-bridge-service/internal/pkg/utils"
	"strings"
)

type patientSearchPayload struct {
	Cpf   string `json:"Cpf,omitempty"`
	Ativo *bool  `json:"Ativo,omitempty"`
}

type patientWritePayload struct {
	ID                *int   `json:"id,omitempty"`
	Nome              string `json:"nome"`
	Email             string `json:"email,omitempty"`
	Telefone          string `json:"telefone,omitempty"`
	Celular           string `json:"celular,omitempty"`
	Cpf               string `json:"cpf,omitempty"`
	DataNascimento    string `json:"dataNascimento,omitempty"`
	Sexo              string `json:"sexo,omitempty"`
	Endereco          string `json:"endereco,omitempty"`
	Numero            string `json:"numero,omitempty"`
	Complemento       string `json:"complemento,omitempty"`
	Bairro            string `json:"bairro,omitempty"`
	Cidade            string `json:"cidade,omitempty"`
	Estado            string `json:"estado,omitempty"`
	Cep               string `json:"cep,omitempty"`
	ConvenioID        *int   `json:"convenioId,omitempty"`
	PlanoID           *int   `json:"planoId,omitempty"`
	NumeroCarteirinha string `json:"numeroCarteirinha,omitempty"`
	Ativo             *bool  `json:"ativo,omitempty"`
}

func mapPatient(record fieldmap.Record) (responses.Patient, error) {
	id := record.String("id", "idPaciente")
	if id == "" || id == "0" {
		return responses.Patient{}, exceptions.ErrMappingMissingID(constvars.ResourcePatient)
	}

	allPhones := collectPhones(record.String("telefone"), record.String("celular"), record.String("telefoneComercial"))
	patient := responses.Patient{
		ID:        id,
		Name:      record.String("nome"),
		Email:     record.String("email"),
		CPF:       record.String("cpf"),
		BirthDate: scheduling.NormalizeDate(record.String("dataNascimento")),
		Gender:    normalizeGender(record.String("sexo")),
		AllPhones: allPhones,
		Active:    record.BoolOr(true, "ativo"),
	}
	if len(allPhones) > 0 {
		patient.Phone = allPhones[0]
	}

	if record.Has("endereco") {
		patient.Address = &responses.Address{
			Street:       record.String("endereco"),
			Number:       record.String("numero"),
			Complement:   record.String("complemento"),
			Neighborhood: record.String("bairro"),
			City:         record.String("cidade"),
			State:        record.String("estado"),
			ZipCode:      record.String("cep"),
		}
	}

	if convenioID := record.String("convenioId"); convenioID != "" && convenioID != "0" {
		patient.HealthInsurance = &responses.Enrollment{
			ID:         convenioID,
			Name:       record.String("convenioNome"),
			PlanID:     record.String("planoId"),
			PlanName:   record.String("planoNome"),
			CardNumber: record.String("numeroCarteirinha"),
		}
	}

	return patient, nil
}

func normalizeGender(value string) string {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "":
		return ""
	case "M", "MASCULINO":
		return "M"
	case "F", "FEMININO":
		return "F"
	}
	return "O"
}

func collectPhones(candidates ...string) []string {
	var phones []string
	seen := make(map[string]bool, len(candidates))
	for _, phone := range candidates {
		phone = strings.TrimSpace(phone)
		if phone == "" || seen[phone] {
			continue
		}
		seen[phone] = true
		phones = append(phones, phone)
	}
	return phones
}

func buildWritePayload(request *requests.PatientWrite) (*patientWritePayload, error) {
	payload := &patientWritePayload{
		Nome:           request.Name,
		Email:          request.Email,
		Telefone:       request.Phone,
		Celular:        request.MobilePhone,
		Cpf:            utils.OnlyDigits(request.CPF),
		DataNascimento: request.BirthDate,
		Sexo:           request.Gender,
		Ativo:          request.Active,
	}

	if request.ID != "" {
		id, err := resources.ParseID(constvars.ResourcePatient, request.ID)
		if err != nil {
			return nil, err
		}
		payload.ID = &id
	}

	if address := request.Address; address != nil {
		payload.Endereco = address.Street
		payload.Numero = address.Number
		payload.Complemento = address.Complement
		payload.Bairro = address.Neighborhood
		payload.Cidade = address.City
		payload.Estado = address.State
		payload.Cep = address.ZipCode
	}

	if enrollment := request.HealthInsurance; enrollment != nil {
		convenioID, err := resources.OptionalID(constvars.ResourceHealthInsurance, enrollment.ID)
		if err != nil {
			return nil, err
		}
		planoID, err := resources.OptionalID(constvars.ResourcePlan, enrollment.PlanID)
		if err != nil {
			return nil, err
		}
		payload.ConvenioID = convenioID
		payload.PlanoID = planoID
		payload.NumeroCarteirinha = enrollment.CardNumber
	}

	return payload, nil
}

// matchesFilter applies the in-memory filters. A CPF filter takes precedence
// over the free text search.
func matchesFilter(patient responses.Patient, filter requests.PatientFilter) bool {
	if filter.Active != nil && patient.Active != *filter.Active {
		return false
	}
	if cpf := utils.OnlyDigits(filter.CPF); cpf != "" {
		return strings.Contains(utils.OnlyDigits(patient.CPF), cpf)
	}
	if filter.Search == "" {
		return true
	}
	if utils.ContainsFold(filter.Search, patient.Name, patient.Email, patient.Phone, patient.CPF) {
		return true
	}
	if !isPhoneLike(filter.Search) {
		return false
	}
	digits := utils.OnlyDigits(filter.Search)
	for _, candidate := range append([]string{patient.CPF}, patient.AllPhones...) {
		if strings.Contains(utils.OnlyDigits(candidate), digits) {
			return true
		}
	}
	return false
}

// isPhoneLike reports whether term is made of digits and the usual phone or
// CPF punctuation only.
func isPhoneLike(term string) bool {
	term = strings.TrimSpace(term)
	if utils.OnlyDigits(term) == "" {
		return false
	}
	for _, r := range term {
		switch {
		case r >= '0' && r <= '9':
		case strings.ContainsRune(" ()-.+", r):
		default:
			return false
		}
	}
	return true
}
