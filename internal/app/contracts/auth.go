package contracts

import (
	"context"

	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	LoginUser(ctx context.Context, business *models.Business, request *requests.Login) (*responses.Login, error)
	LogoutUser(ctx context.Context, session *models.Session) error
}
