package requests

type PatientAddress struct {
	Street       string `json:"street" validate:"required"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state" validate:"omitempty,len=2"`
	ZipCode      string `json:"zipCode"`
}

type PatientEnrollment struct {
	ID         string `json:"id" validate:"required,numeric"`
	PlanID     string `json:"planId" validate:"omitempty,numeric"`
	CardNumber string `json:"cardNumber"`
}

type PatientWrite struct {
	ID              string             `json:"-"`
	Name            string             `json:"name" validate:"required"`
	Email           string             `json:"email" validate:"omitempty,email"`
	Phone           string             `json:"phone" validate:"omitempty,br_phone"`
	MobilePhone     string             `json:"mobilePhone" validate:"omitempty,br_phone"`
	CPF             string             `json:"cpf" validate:"omitempty,cpf"`
	BirthDate       string             `json:"birthDate" validate:"omitempty,date"`
	Gender          string             `json:"gender" validate:"omitempty,oneof=M F O"`
	Address         *PatientAddress    `json:"address" validate:"omitempty"`
	HealthInsurance *PatientEnrollment `json:"healthInsurance" validate:"omitempty"`
	Active          *bool              `json:"active"`
}
