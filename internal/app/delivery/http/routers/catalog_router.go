package routers

import (
	"clinic-bridge-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachLocationRoutes(router chi.Router, locationController *controllers.LocationController) {
	router.Get("/", locationController.FindAll)
	router.Get("/{id}", locationController.FindByID)
}

func attachProfessionalRoutes(router chi.Router, professionalController *controllers.ProfessionalController) {
	router.Get("/", professionalController.FindAll)
	router.Get("/{id}", professionalController.FindByID)
}

func attachSpecialtyRoutes(router chi.Router, specialtyController *controllers.SpecialtyController) {
	router.Get("/", specialtyController.FindAll)
	router.Get("/{id}", specialtyController.FindByID)
}

func attachMedicalServiceRoutes(router chi.Router, medicalServiceController *controllers.MedicalServiceController) {
	router.Get("/", medicalServiceController.FindAll)
	router.Get("/{id}", medicalServiceController.FindByID)
}

func attachHealthInsuranceRoutes(router chi.Router, healthInsuranceController *controllers.HealthInsuranceController) {
	router.Get("/", healthInsuranceController.FindAll)
	router.Get("/{id}", healthInsuranceController.FindByID)
}

func attachPlanRoutes(router chi.Router, planController *controllers.PlanController) {
	router.Get("/", planController.FindAll)
	router.Get("/{id}", planController.FindByID)
}
