package routers

import (
	"clinic-bridge-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, scheduleController *controllers.ScheduleController) {
	router.Get("/", scheduleController.FindSchedules)
	router.Get("/available-slots", scheduleController.FindAvailableSlots)
}
