package requests

type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

type AppointmentFilter struct {
	Pagination
	ClientID       string
	ProfessionalID string
	Start          string
	End            string
	// State is a canonical state translated before reaching the upstream.
	State string
	// Status is forwarded to the upstream untouched.
	Status string
}

type ScheduleQuery struct {
	Start             string `validate:"required"`
	End               string `validate:"required"`
	ProfessionalID    string
	ServiceID         string
	SpecialtyID       string
	LocationID        string
	HealthInsuranceID string
	ClientID          string
	PlanID            string
}

type AvailableSlotsQuery struct {
	Date           string `validate:"required"`
	ProfessionalID string
	SpecialtyID    string
	ProcedureID    string
}

type PatientFilter struct {
	Pagination
	Search string
	CPF    string
	Active *bool
}

type ClientSearch struct {
	CPF    string `json:"cpf" validate:"omitempty,cpf"`
	Phone  string `json:"telefone" validate:"omitempty,br_phone"`
	Email  string `json:"email" validate:"omitempty,email"`
	Search string `json:"search"`
}

func (s ClientSearch) HasCriteria() bool {
	return s.CPF != "" || s.Phone != "" || s.Email != "" || s.Search != ""
}

type ProfessionalFilter struct {
	Pagination
	Search            string
	SpecialtyID       string
	LocationID        string
	HealthInsuranceID string
	ServiceID         string
	Enabled           *bool
}

type LocationFilter struct {
	Pagination
	Search         string
	SpecialtyID    string
	ProfessionalID string
}

type ServiceFilter struct {
	Pagination
	Search            string
	LocationID        string
	ProfessionalID    string
	HealthInsuranceID string
	SpecialtyID       string
	PlanID            string
	ClientID          string
	Enabled           *bool
}

type HealthInsuranceFilter struct {
	Pagination
	Search string
	Active *bool
}

type PlanFilter struct {
	Pagination
	Search            string
	HealthInsuranceID string
	LocationID        string
	ProfessionalID    string
}

type SpecialtyFilter struct {
	Pagination
	Search string
}
