package middlewares

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	SessionService  contracts.SessionService
	BusinessUsecase contracts.BusinessUsecase
	InternalConfig  *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	sessionService contracts.SessionService,
	businessUsecase contracts.BusinessUsecase,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:             logger,
		SessionService:  sessionService,
		BusinessUsecase: businessUsecase,
		InternalConfig:  internalConfig,
	}
}
