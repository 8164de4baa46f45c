package catalog

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

type serviceUsecase struct {
	ServiceRepository contracts.ServiceRepository
	Log               *zap.Logger
}

var (
	serviceUsecaseInstance contracts.ServiceUsecase
	onceServiceUsecase     sync.Once
)

func NewServiceUsecase(
	serviceRepository contracts.ServiceRepository,
	logger *zap.Logger,
) contracts.ServiceUsecase {
	onceServiceUsecase.Do(func() {
		instance := &serviceUsecase{
			ServiceRepository: serviceRepository,
			Log:               logger,
		}
		serviceUsecaseInstance = instance
	})
	return serviceUsecaseInstance
}

func (uc *serviceUsecase) FindAll(ctx context.Context, business *models.Business) ([]responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
	)

	services, err := uc.ServiceRepository.FindServicesByBusinessID(ctx, business.ID)
	if err != nil {
		uc.Log.Error("serviceUsecase.FindAll error fetching services",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Service, 0, len(services))
	for _, service := range services {
		result = append(result, buildServiceResponse(&service))
	}

	uc.Log.Info("serviceUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	return result, nil
}

func (uc *serviceUsecase) FindByID(ctx context.Context, business *models.Business, serviceID string) (*responses.Service, error) {
	service, err := uc.findExisting(ctx, business, serviceID)
	if err != nil {
		return nil, err
	}
	result := buildServiceResponse(service)
	return &result, nil
}

func (uc *serviceUsecase) CreateService(ctx context.Context, business *models.Business, request *requests.CreateService) (*responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.CreateService called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
	)

	service := &models.Service{
		BusinessID:      business.ID,
		Name:            request.Name,
		DurationMinutes: request.DurationMinutes,
		Price:           request.Price,
		Active:          true,
	}

	created, err := uc.ServiceRepository.CreateService(ctx, service)
	if err != nil {
		uc.Log.Error("serviceUsecase.CreateService error creating service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("serviceUsecase.CreateService succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, created.ID),
	)
	result := buildServiceResponse(created)
	return &result, nil
}

func (uc *serviceUsecase) UpdateService(ctx context.Context, business *models.Business, serviceID string, request *requests.UpdateService) (*responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.UpdateService called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)

	service, err := uc.findExisting(ctx, business, serviceID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		service.Name = *request.Name
	}
	if request.DurationMinutes != nil {
		service.DurationMinutes = *request.DurationMinutes
	}
	if request.Price != nil {
		service.Price = *request.Price
	}
	if request.Active != nil {
		service.Active = *request.Active
	}

	updated, err := uc.ServiceRepository.UpdateService(ctx, service)
	if err != nil {
		uc.Log.Error("serviceUsecase.UpdateService error updating service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := buildServiceResponse(updated)
	return &result, nil
}

// DeleteService deactivates the service so history keeps its snapshot.
func (uc *serviceUsecase) DeleteService(ctx context.Context, business *models.Business, serviceID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.DeleteService called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)

	service, err := uc.findExisting(ctx, business, serviceID)
	if err != nil {
		return err
	}

	service.Active = false
	service.SetDeletedAt()
	_, err = uc.ServiceRepository.UpdateService(ctx, service)
	if err != nil {
		uc.Log.Error("serviceUsecase.DeleteService error deactivating service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *serviceUsecase) findExisting(ctx context.Context, business *models.Business, serviceID string) (*models.Service, error) {
	service, err := uc.ServiceRepository.FindServiceByID(ctx, business.ID, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrServiceNotExist(nil)
	}
	return service, nil
}

func buildServiceResponse(service *models.Service) responses.Service {
	return responses.Service{
		ID:              service.ID,
		Name:            service.Name,
		DurationMinutes: service.DurationMinutes,
		Price:           service.Price,
		Active:          service.Active,
	}
}
