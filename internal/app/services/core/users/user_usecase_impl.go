package users

import (
	"context"
	"sync"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository   contracts.UserRepository
	WorkerRepository contracts.WorkerRepository
	Log              *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	workerRepository contracts.WorkerRepository,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		instance := &userUsecase{
			UserRepository:   userRepository,
			WorkerRepository: workerRepository,
			Log:              logger,
		}
		userUsecaseInstance = instance
	})
	return userUsecaseInstance
}

func (uc *userUsecase) FindAll(ctx context.Context, business *models.Business) ([]responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
	)

	users, err := uc.UserRepository.FindUsersByBusinessID(ctx, business.ID)
	if err != nil {
		uc.Log.Error("userUsecase.FindAll error fetching users",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.User, 0, len(users))
	for _, user := range users {
		result = append(result, buildUserResponse(&user))
	}
	return result, nil
}

func (uc *userUsecase) FindByID(ctx context.Context, business *models.Business, userID string) (*responses.User, error) {
	user, err := uc.findExisting(ctx, business, userID)
	if err != nil {
		return nil, err
	}
	result := buildUserResponse(user)
	return &result, nil
}

func (uc *userUsecase) CreateUser(ctx context.Context, business *models.Business, request *requests.CreateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	existingUser, err := uc.UserRepository.FindUserByUsername(ctx, business.ID, request.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	if request.WorkerID != "" {
		if err := uc.ensureWorkerExists(ctx, business, request.WorkerID); err != nil {
			return nil, err
		}
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		uc.Log.Error("userUsecase.CreateUser error hashing password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	user := &models.User{
		BusinessID: business.ID,
		Username:   request.Username,
		Password:   hashedPassword,
		Role:       request.Role,
		WorkerID:   request.WorkerID,
	}

	created, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.CreateUser error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, created.ID),
	)
	result := buildUserResponse(created)
	return &result, nil
}

func (uc *userUsecase) UpdateUser(ctx context.Context, business *models.Business, userID string, request *requests.UpdateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	user, err := uc.findExisting(ctx, business, userID)
	if err != nil {
		return nil, err
	}

	if request.Password != nil {
		hashedPassword, err := utils.HashPassword(*request.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}
	if request.Role != nil {
		user.Role = *request.Role
	}
	if request.WorkerID != nil {
		if *request.WorkerID != "" {
			if err := uc.ensureWorkerExists(ctx, business, *request.WorkerID); err != nil {
				return nil, err
			}
		}
		user.WorkerID = *request.WorkerID
	}

	updated, err := uc.UserRepository.UpdateUser(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateUser error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := buildUserResponse(updated)
	return &result, nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, business *models.Business, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.DeleteUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	user, err := uc.findExisting(ctx, business, userID)
	if err != nil {
		return err
	}

	user.SetDeletedAt()
	_, err = uc.UserRepository.UpdateUser(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.DeleteUser error deleting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *userUsecase) findExisting(ctx context.Context, business *models.Business, userID string) (*models.User, error) {
	user, err := uc.UserRepository.FindUserByID(ctx, business.ID, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.DeletedAt != nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return user, nil
}

func (uc *userUsecase) ensureWorkerExists(ctx context.Context, business *models.Business, workerID string) error {
	worker, err := uc.WorkerRepository.FindWorkerByID(ctx, business.ID, workerID)
	if err != nil {
		return err
	}
	if worker == nil {
		return exceptions.ErrWorkerNotExist(nil)
	}
	return nil
}

func buildUserResponse(user *models.User) responses.User {
	return responses.User{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		WorkerID: user.WorkerID,
	}
}
