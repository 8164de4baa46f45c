package contracts

import (
	"context"

	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
)

type WorkerUsecase interface {
	FindAll(ctx context.Context, business *models.Business) ([]responses.Worker, error)
	FindByID(ctx context.Context, business *models.Business, workerID string) (*responses.Worker, error)
	CreateWorker(ctx context.Context, business *models.Business, request *requests.CreateWorker) (*responses.Worker, error)
	UpdateWorker(ctx context.Context, business *models.Business, workerID string, request *requests.UpdateWorker) (*responses.Worker, error)
	DeleteWorker(ctx context.Context, business *models.Business, workerID string) error
}

type WorkerRepository interface {
	FindWorkersByBusinessID(ctx context.Context, businessID string) ([]models.Worker, error)
	FindActiveWorkersByBusinessID(ctx context.Context, businessID string) ([]models.Worker, error)
	FindWorkerByID(ctx context.Context, businessID, workerID string) (*models.Worker, error)
	CreateWorker(ctx context.Context, worker *models.Worker) (*models.Worker, error)
	UpdateWorker(ctx context.Context, worker *models.Worker) (*models.Worker, error)
}
