package routers

import (
	"clinic-bridge-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachClientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.FindAllClients)
	router.Post("/", patientController.Create)
	router.Get("/search", patientController.SearchClients)
	router.Get("/{id}", patientController.FindClientByID)
	router.Put("/{id}", patientController.Update)
}

// Legacy routes kept for older integrations.
func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.FindAllPatients)
	router.Post("/", patientController.Create)
	router.Get("/{id}", patientController.FindByID)
	router.Put("/{id}", patientController.Update)
}
