package auth

import (
	"context"
	"sync"
	"time"

	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/app/services/shared/ratelimiter"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	LoginLimiter   *ratelimiter.LoginLimiter
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	loginLimiter *ratelimiter.LoginLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			LoginLimiter:   loginLimiter,
			InternalConfig: internalConfig,
			Log:            logger,
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

func (uc *authUsecase) LoginUser(ctx context.Context, business *models.Business, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	// throttle per business and username so one tenant cannot exhaust another
	if !uc.LoginLimiter.Allow(business.ID + ":" + request.Username) {
		uc.Log.Info("authUsecase.LoginUser rate limited",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUsernameKey, request.Username),
		)
		return nil, exceptions.ErrTooManyLoginAttempts(nil)
	}

	user, err := uc.UserRepository.FindUserByUsername(ctx, business.ID, request.Username)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil || user.DeletedAt != nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		uc.Log.Info("authUsecase.LoginUser wrong password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUsernameKey, request.Username),
		)
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	sessionID := uuid.NewString()
	session := &models.Session{
		SessionID:  sessionID,
		UserID:     user.ID,
		BusinessID: user.BusinessID,
		Username:   user.Username,
		Role:       user.Role,
		WorkerID:   user.WorkerID,
		ExpiresAt:  time.Now().Add(time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour),
	}

	err = uc.SessionService.CreateSession(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.LoginUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.Login{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
		WorkerID: user.WorkerID,
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LogoutUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	err := uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.LogoutUser error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
