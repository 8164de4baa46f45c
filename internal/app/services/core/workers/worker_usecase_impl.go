package workers

import (
	"context"
	"sync"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type workerUsecase struct {
	WorkerRepository contracts.WorkerRepository
	Log              *zap.Logger
}

var (
	workerUsecaseInstance contracts.WorkerUsecase
	onceWorkerUsecase     sync.Once
)

func NewWorkerUsecase(
	workerRepository contracts.WorkerRepository,
	logger *zap.Logger,
) contracts.WorkerUsecase {
	onceWorkerUsecase.Do(func() {
		instance := &workerUsecase{
			WorkerRepository: workerRepository,
			Log:              logger,
		}
		workerUsecaseInstance = instance
	})
	return workerUsecaseInstance
}

func (uc *workerUsecase) FindAll(ctx context.Context, business *models.Business) ([]responses.Worker, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("workerUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
	)

	workers, err := uc.WorkerRepository.FindWorkersByBusinessID(ctx, business.ID)
	if err != nil {
		uc.Log.Error("workerUsecase.FindAll error fetching workers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Worker, 0, len(workers))
	for _, worker := range workers {
		result = append(result, buildWorkerResponse(&worker))
	}
	return result, nil
}

func (uc *workerUsecase) FindByID(ctx context.Context, business *models.Business, workerID string) (*responses.Worker, error) {
	worker, err := uc.findExisting(ctx, business, workerID)
	if err != nil {
		return nil, err
	}
	result := buildWorkerResponse(worker)
	return &result, nil
}

func (uc *workerUsecase) CreateWorker(ctx context.Context, business *models.Business, request *requests.CreateWorker) (*responses.Worker, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("workerUsecase.CreateWorker called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
		zap.String(constvars.LoggingWorkerNameKey, request.Name),
	)

	worker := &models.Worker{
		BusinessID: business.ID,
		Name:       request.Name,
		Active:     true,
	}

	created, err := uc.WorkerRepository.CreateWorker(ctx, worker)
	if err != nil {
		uc.Log.Error("workerUsecase.CreateWorker error creating worker",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := buildWorkerResponse(created)
	return &result, nil
}

func (uc *workerUsecase) UpdateWorker(ctx context.Context, business *models.Business, workerID string, request *requests.UpdateWorker) (*responses.Worker, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("workerUsecase.UpdateWorker called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkerIDKey, workerID),
	)

	worker, err := uc.findExisting(ctx, business, workerID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		worker.Name = *request.Name
	}
	if request.Active != nil {
		worker.Active = *request.Active
	}

	updated, err := uc.WorkerRepository.UpdateWorker(ctx, worker)
	if err != nil {
		uc.Log.Error("workerUsecase.UpdateWorker error updating worker",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := buildWorkerResponse(updated)
	return &result, nil
}

// DeleteWorker deactivates the worker. Existing appointments keep the
// assignment; the worker just stops receiving new ones.
func (uc *workerUsecase) DeleteWorker(ctx context.Context, business *models.Business, workerID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("workerUsecase.DeleteWorker called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkerIDKey, workerID),
	)

	worker, err := uc.findExisting(ctx, business, workerID)
	if err != nil {
		return err
	}

	worker.Active = false
	worker.SetDeletedAt()
	_, err = uc.WorkerRepository.UpdateWorker(ctx, worker)
	if err != nil {
		uc.Log.Error("workerUsecase.DeleteWorker error deactivating worker",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *workerUsecase) findExisting(ctx context.Context, business *models.Business, workerID string) (*models.Worker, error) {
	worker, err := uc.WorkerRepository.FindWorkerByID(ctx, business.ID, workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, exceptions.ErrWorkerNotExist(nil)
	}
	return worker, nil
}

func buildWorkerResponse(worker *models.Worker) responses.Worker {
	return responses.Worker{
		ID:     worker.ID,
		Name:   worker.Name,
		Active: worker.Active,
	}
}
