package contracts

import (
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"context"
)

type ProfessionalUsecase interface {
	FindAll(ctx context.Context, filter requests.ProfessionalFilter) ([]responses.Professional, *responses.Pagination, error)
	FindByID(ctx context.Context, professionalID string) (*responses.Professional, error)
}

type SpecialtyUsecase interface {
	FindAll(ctx context.Context, filter requests.SpecialtyFilter) ([]responses.Specialty, *responses.Pagination, error)
	FindByID(ctx context.Context, specialtyID string) (*responses.Specialty, error)
}

type LocationUsecase interface {
	FindAll(ctx context.Context, filter requests.LocationFilter) ([]responses.Location, *responses.Pagination, error)
	FindByID(ctx context.Context, locationID string) (*responses.Location, error)
}

type MedicalServiceUsecase interface {
	FindAll(ctx context.Context, filter requests.ServiceFilter) ([]responses.Service, *responses.Pagination, error)
	FindByID(ctx context.Context, serviceID string) (*responses.Service, error)
}

type HealthInsuranceUsecase interface {
	FindAll(ctx context.Context, filter requests.HealthInsuranceFilter) ([]responses.HealthInsurance, *responses.Pagination, error)
	FindByID(ctx context.Context, healthInsuranceID string) (*responses.HealthInsurance, error)
}

type PlanUsecase interface {
	FindAll(ctx context.Context, filter requests.PlanFilter) ([]responses.Plan, *responses.Pagination, error)
	FindByID(ctx context.Context, planID string) (*responses.Plan, error)
}
