package contracts

import (
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"context"
)

type PatientUsecase interface {
	FindAll(ctx context.Context, filter requests.PatientFilter) ([]responses.Patient, *responses.Pagination, error)
	FindByID(ctx context.Context, patientID string) (*responses.Patient, error)
	Search(ctx context.Context, search requests.ClientSearch) ([]responses.Patient, *responses.Pagination, error)
	Create(ctx context.Context, request *requests.PatientWrite) (*responses.Patient, error)
	Update(ctx context.Context, request *requests.PatientWrite) (*responses.Patient, error)
}
