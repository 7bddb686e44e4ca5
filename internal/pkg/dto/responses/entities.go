package responses

import "clinic-bridge-service/internal/pkg/scheduling"

type Reference struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AppointmentClient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type Appointment struct {
	ID              string            `json:"id"`
	Date            string            `json:"date"`
	Hour            string            `json:"hour"`
	EndHour         string            `json:"endHour,omitempty"`
	State           scheduling.State  `json:"state"`
	Classification  string            `json:"classification,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	Client          AppointmentClient `json:"client"`
	Professional    *Reference        `json:"professional,omitempty"`
	Service         *Reference        `json:"service,omitempty"`
	Specialty       *Reference        `json:"specialty,omitempty"`
	Location        *Reference        `json:"location,omitempty"`
	HealthInsurance *Reference        `json:"healthInsurance,omitempty"`
	Plan            *Reference        `json:"plan,omitempty"`
}

type Schedule struct {
	ID               string                `json:"id"`
	ProfessionalID   string                `json:"professionalId"`
	ProfessionalName string                `json:"professionalName"`
	Date             string                `json:"date"`
	Intervals        []scheduling.Interval `json:"intervals"`
}

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Duration  *int   `json:"duration,omitempty"`
}

type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

type Enrollment struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PlanID     string `json:"planId,omitempty"`
	PlanName   string `json:"planName,omitempty"`
	CardNumber string `json:"cardNumber,omitempty"`
}

type Patient struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Phone           string      `json:"phone,omitempty"`
	AllPhones       []string    `json:"allPhones,omitempty"`
	Email           string      `json:"email,omitempty"`
	CPF             string      `json:"cpf,omitempty"`
	BirthDate       string      `json:"birthDate,omitempty"`
	Gender          string      `json:"gender,omitempty"`
	Address         *Address    `json:"address,omitempty"`
	HealthInsurance *Enrollment `json:"healthInsurance,omitempty"`
	Active          bool        `json:"active"`
}

type Specialty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Description string   `json:"description,omitempty"`
	Preparation string   `json:"preparation,omitempty"`
}

type Professional struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Email               string      `json:"email,omitempty"`
	Phone               string      `json:"phone,omitempty"`
	CPF                 string      `json:"cpf,omitempty"`
	RegistrationNumber  string      `json:"registrationNumber,omitempty"`
	RegistrationCouncil string      `json:"registrationCouncil,omitempty"`
	Specialties         []Specialty `json:"specialties"`
	Services            []Service   `json:"services"`
	Active              bool        `json:"active"`
}

type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Active  bool   `json:"active"`
}

type Plan struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Code              string `json:"code,omitempty"`
	Type              string `json:"type,omitempty"`
	HealthInsuranceID string `json:"healthInsuranceId,omitempty"`
	Active            bool   `json:"active"`
}

type HealthInsurance struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Plans              []Plan `json:"plans"`
	Active             bool   `json:"active"`
}
