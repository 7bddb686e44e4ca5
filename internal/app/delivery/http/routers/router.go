package routers

import (
	"clinic-bridge-service/internal/app/config"
	"clinic-bridge-service/internal/app/delivery/http/controllers"
	"clinic-bridge-service/internal/app/delivery/http/middlewares"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Controllers struct {
	Health          *controllers.HealthController
	Appointment     *controllers.AppointmentController
	Schedule        *controllers.ScheduleController
	Patient         *controllers.PatientController
	Professional    *controllers.ProfessionalController
	Specialty       *controllers.SpecialtyController
	Location        *controllers.LocationController
	MedicalService  *controllers.MedicalServiceController
	HealthInsurance *controllers.HealthInsuranceController
	Plan            *controllers.PlanController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLogger *logrus.Logger,
	registry prometheus.Gatherer,
	middlewares *middlewares.Middlewares,
	controllers Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: internalConfig.App.CorsAllowCredentials,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger(internalConfig.App, accessLogger))
	router.Use(middlewares.Metrics)

	router.NotFound(middlewares.NotFound)
	router.MethodNotAllowed(middlewares.NotFound)

	router.Get("/health", controllers.Health.Health)
	router.Get("/ready", controllers.Health.Ready)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/locations", func(r chi.Router) {
				attachLocationRoutes(r, controllers.Location)
			})

			r.Route("/clients", func(r chi.Router) {
				attachClientRoutes(r, controllers.Patient)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, controllers.Patient)
			})

			r.Route("/professionals", func(r chi.Router) {
				attachProfessionalRoutes(r, controllers.Professional)
			})

			r.Route("/specialties", func(r chi.Router) {
				attachSpecialtyRoutes(r, controllers.Specialty)
			})

			r.Route("/services", func(r chi.Router) {
				attachMedicalServiceRoutes(r, controllers.MedicalService)
			})

			r.Route("/health-insurances", func(r chi.Router) {
				attachHealthInsuranceRoutes(r, controllers.HealthInsurance)
			})

			r.Route("/plans", func(r chi.Router) {
				attachPlanRoutes(r, controllers.Plan)
			})

			r.Get("/schedule", controllers.Schedule.FindSchedules)
			r.Route("/schedules", func(r chi.Router) {
				attachScheduleRoutes(r, controllers.Schedule)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, controllers.Appointment)
			})
		})
	})
}
