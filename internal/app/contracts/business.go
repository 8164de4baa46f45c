package contracts

import (
	"context"

	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/responses"
)

type BusinessUsecase interface {
	FindBySlug(ctx context.Context, slug string) (*responses.Business, error)
	ResolveBySlug(ctx context.Context, slug string) (*models.Business, error)
}

type BusinessRepository interface {
	FindBusinessBySlug(ctx context.Context, slug string) (*models.Business, error)
	CreateBusiness(ctx context.Context, business *models.Business) (*models.Business, error)
}
