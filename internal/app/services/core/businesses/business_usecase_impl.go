package businesses

import (
	"context"
	"sync"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type businessUsecase struct {
	BusinessRepository contracts.BusinessRepository
	Log                *zap.Logger
}

var (
	businessUsecaseInstance contracts.BusinessUsecase
	onceBusinessUsecase     sync.Once
)

func NewBusinessUsecase(
	businessRepository contracts.BusinessRepository,
	logger *zap.Logger,
) contracts.BusinessUsecase {
	onceBusinessUsecase.Do(func() {
		instance := &businessUsecase{
			BusinessRepository: businessRepository,
			Log:                logger,
		}
		businessUsecaseInstance = instance
	})
	return businessUsecaseInstance
}

func (uc *businessUsecase) FindBySlug(ctx context.Context, slug string) (*responses.Business, error) {
	business, err := uc.ResolveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &responses.Business{
		ID:   business.ID,
		Name: business.Name,
		Slug: business.Slug,
	}, nil
}

func (uc *businessUsecase) ResolveBySlug(ctx context.Context, slug string) (*models.Business, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("businessUsecase.ResolveBySlug called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessSlugKey, slug),
	)

	business, err := uc.BusinessRepository.FindBusinessBySlug(ctx, slug)
	if err != nil {
		uc.Log.Error("businessUsecase.ResolveBySlug error fetching business",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if business == nil {
		uc.Log.Info("businessUsecase.ResolveBySlug business not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBusinessSlugKey, slug),
		)
		return nil, exceptions.ErrBusinessNotExist(nil)
	}
	return business, nil
}
