package contracts

import (
	"context"

	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
)

type ServiceUsecase interface {
	FindAll(ctx context.Context, business *models.Business) ([]responses.Service, error)
	FindByID(ctx context.Context, business *models.Business, serviceID string) (*responses.Service, error)
	CreateService(ctx context.Context, business *models.Business, request *requests.CreateService) (*responses.Service, error)
	UpdateService(ctx context.Context, business *models.Business, serviceID string, request *requests.UpdateService) (*responses.Service, error)
	DeleteService(ctx context.Context, business *models.Business, serviceID string) error
}

type ServiceRepository interface {
	FindServicesByBusinessID(ctx context.Context, businessID string) ([]models.Service, error)
	FindServiceByID(ctx context.Context, businessID, serviceID string) (*models.Service, error)
	CreateService(ctx context.Context, service *models.Service) (*models.Service, error)
	UpdateService(ctx context.Context, service *models.Service) (*models.Service, error)
}
