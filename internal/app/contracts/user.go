package contracts

import (
	"context"

	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	FindAll(ctx context.Context, business *models.Business) ([]responses.User, error)
	FindByID(ctx context.Context, business *models.Business, userID string) (*responses.User, error)
	CreateUser(ctx context.Context, business *models.Business, request *requests.CreateUser) (*responses.User, error)
	UpdateUser(ctx context.Context, business *models.Business, userID string, request *requests.UpdateUser) (*responses.User, error)
	DeleteUser(ctx context.Context, business *models.Business, userID string) error
}

type UserRepository interface {
	FindUsersByBusinessID(ctx context.Context, businessID string) ([]models.User, error)
	FindUserByID(ctx context.Context, businessID, userID string) (*models.User, error)
	FindUserByUsername(ctx context.Context, businessID, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)
}
