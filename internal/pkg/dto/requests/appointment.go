package requests

type EntityRef struct {
	ID string `json:"id" validate:"required,numeric"`
}

type CreateAppointment struct {
	Date            string     `json:"date" validate:"required,date"`
	Hour            string     `json:"hour" validate:"required,hhmm"`
	Notes           string     `json:"notes"`
	Client          EntityRef  `json:"client"`
	Professional    *EntityRef `json:"professional" validate:"omitempty"`
	Service         *EntityRef `json:"service" validate:"omitempty"`
	Location        *EntityRef `json:"location" validate:"omitempty"`
	HealthInsurance *EntityRef `json:"healthInsurance" validate:"omitempty"`
	Plan            *EntityRef `json:"plan" validate:"omitempty"`
}

type UpdateAppointmentStatus struct {
	State string `json:"state"`
}

type CancelAppointment struct {
	Reason string `json:"reason"`
}
