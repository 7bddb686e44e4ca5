package routers

import (
	"clinic-bridge-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.Post("/", appointmentController.Create)
	router.Get("/{id}", appointmentController.FindByID)
	router.Patch("/{id}/status", appointmentController.UpdateStatus)
	router.Post("/{id}/cancel", appointmentController.Cancel)
}
