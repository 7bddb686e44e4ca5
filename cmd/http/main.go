package main

import (
	"clinic-bridge-service/internal/app/config"
	"clinic-bridge-service/internal/app/delivery/http/controllers"
	"clinic-bridge-service/internal/app/delivery/http/middlewares"
	"clinic-bridge-service/internal/app/delivery/http/routers"
	"clinic-bridge-service/internal/app/drivers/logger"
	"clinic-bridge-service/internal/app/drivers/messaging"
	"clinic-bridge-service/internal/app/services/core/appointments"
	healthInsurances "clinic-bridge-service/internal/app/services/core/health_insurances"
	"clinic-bridge-service/internal/app/services/core/locations"
	medicalServices "clinic-bridge-service/internal/app/services/core/medical_services"
	"clinic-bridge-service/internal/app/services/core/patients"
	"clinic-bridge-service/internal/app/services/core/plans"
	"clinic-bridge-service/internal/app/services/core/professionals"
	"clinic-bridge-service/internal/app/services/core/schedules"
	"clinic-bridge-service/internal/app/services/core/specialties"
	"clinic-bridge-service/internal/app/services/shared/events"
	"clinic-bridge-service/internal/app/services/upstream"
	"clinic-bridge-service/internal/pkg/metrics"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()
	accessLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		AccessLogger:   accessLogger,
		RabbitMQ:       rabbitMQ,
		Registry:       registry,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if rabbitMQ != nil {
		if err := rabbitMQ.Close(); err != nil {
			log.Error("Failed to close RabbitMQ connection", zap.Error(err))
		}
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Metrics
	upstreamMetrics := metrics.NewUpstreamMetrics(bootstrap.Registry)
	httpMetrics := metrics.NewHTTPMetrics(bootstrap.Registry)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig, httpMetrics)

	// Upstream
	tokenProvider := upstream.NewTokenProvider(bootstrap.InternalConfig.Upstream, bootstrap.Logger, upstreamMetrics)
	upstreamClient := upstream.NewUpstreamClient(bootstrap.InternalConfig.Upstream, tokenProvider, bootstrap.Logger, upstreamMetrics)

	// Events
	eventPublisher, err := events.NewEventPublisher(
		bootstrap.RabbitMQ,
		bootstrap.DriverConfig.RabbitMQ.AppointmentEventsQueue,
		time.Duration(bootstrap.DriverConfig.RabbitMQ.PublishTimeoutInSeconds)*time.Second,
		bootstrap.Logger,
	)
	if err != nil {
		bootstrap.Logger.Warn("Failed to set up appointment event publisher, events are disabled", zap.Error(err))
		eventPublisher = events.NewNoopEventPublisher(bootstrap.Logger)
	}

	// Usecases
	appointmentUsecase := appointments.NewAppointmentUsecase(upstreamClient, eventPublisher, upstreamMetrics, bootstrap.Logger)
	scheduleUsecase := schedules.NewScheduleUsecase(upstreamClient, upstreamMetrics, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(upstreamClient, upstreamMetrics, bootstrap.Logger)
	professionalUsecase := professionals.NewProfessionalUsecase(upstreamClient, upstreamMetrics, bootstrap.InternalConfig.Upstream.DefaultHealthInsuranceID, bootstrap.Logger)
	specialtyUsecase := specialties.NewSpecialtyUsecase(upstreamClient, upstreamMetrics, bootstrap.Logger)
	locationUsecase := locations.NewLocationUsecase(upstreamClient, upstreamMetrics, bootstrap.Logger)
	medicalServiceUsecase := medicalServices.NewMedicalServiceUsecase(upstreamClient, upstreamMetrics, bootstrap.Logger)
	healthInsuranceUsecase := healthInsurances.NewHealthInsuranceUsecase(upstreamClient, upstreamMetrics, bootstrap.Logger)
	planUsecase := plans.NewPlanUsecase(upstreamClient, upstreamMetrics, bootstrap.Logger)

	// Controllers
	internalConfig := bootstrap.InternalConfig
	routers.SetupRoutes(bootstrap.Router, internalConfig, bootstrap.AccessLogger, bootstrap.Registry, middlewareInstance, routers.Controllers{
		Health:          controllers.NewHealthController(bootstrap.Logger, internalConfig),
		Appointment:     controllers.NewAppointmentController(bootstrap.Logger, internalConfig, appointmentUsecase),
		Schedule:        controllers.NewScheduleController(bootstrap.Logger, internalConfig, scheduleUsecase),
		Patient:         controllers.NewPatientController(bootstrap.Logger, internalConfig, patientUsecase),
		Professional:    controllers.NewProfessionalController(bootstrap.Logger, internalConfig, professionalUsecase),
		Specialty:       controllers.NewSpecialtyController(bootstrap.Logger, internalConfig, specialtyUsecase),
		Location:        controllers.NewLocationController(bootstrap.Logger, internalConfig, locationUsecase),
		MedicalService:  controllers.NewMedicalServiceController(bootstrap.Logger, internalConfig, medicalServiceUsecase),
		HealthInsurance: controllers.NewHealthInsuranceController(bootstrap.Logger, internalConfig, healthInsuranceUsecase),
		Plan:            controllers.NewPlanController(bootstrap.Logger, internalConfig, planUsecase),
	})
}
