package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda-service/internal/app/config"
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/models"
	"agenda-service/internal/app/services/core/auth"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, business *models.Business, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, business, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) LogoutUser(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

type MockBusinessUsecase struct {
	mock.Mock
}

func (m *MockBusinessUsecase) FindBySlug(ctx context.Context, slug string) (*responses.Business, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Business), args.Error(1)
}

func (m *MockBusinessUsecase) ResolveBySlug(ctx context.Context, slug string) (*models.Business, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Business), args.Error(1)
}

func TestAuthRouter_LoginEndpoint(t *testing.T) {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		JWT: config.JWT{
			Secret:        "test-secret",
			ExpTimeInHour: 8,
		},
	}

	mockAuthUsecase := new(MockAuthUsecase)
	mockBusinessUsecase := new(MockBusinessUsecase)

	authController := auth.NewAuthController(logger, mockAuthUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:             logger,
		BusinessUsecase: mockBusinessUsecase,
		InternalConfig:  internalConfig,
	}

	business := &models.Business{
		ID:     "biz1",
		Slug:   "magicbeautycol",
		Name:   "Magic Beauty",
		Active: true,
	}

	router := chi.NewRouter()
	router.Route("/businesses/{businessSlug}", func(r chi.Router) {
		r.Use(middlewareInstance.BusinessResolver)
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewareInstance, authController)
		})
	})

	t.Run("Login with valid credentials", func(t *testing.T) {
		mockBusinessUsecase.On("ResolveBySlug", mock.Anything, "magicbeautycol").Return(business, nil)
		mockAuthUsecase.On("LoginUser", mock.Anything, business, mock.AnythingOfType("*requests.Login")).
			Return(&responses.Login{Token: "jwt-token", Username: "admin", Role: "admin"}, nil).Once()

		requestBody := requests.Login{
			Username: "admin",
			Password: "secret123",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/businesses/magicbeautycol/auth/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid credentials")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Login with missing password", func(t *testing.T) {
		mockBusinessUsecase.On("ResolveBySlug", mock.Anything, "magicbeautycol").Return(business, nil)

		jsonBody, _ := json.Marshal(requests.Login{Username: "admin"})

		req := httptest.NewRequest("POST", "/businesses/magicbeautycol/auth/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 for a failed validation")
		mockAuthUsecase.AssertNotCalled(t, "LoginUser", mock.Anything, mock.Anything, mock.AnythingOfType("*requests.Login"))
	})

	t.Run("Login against an unknown business", func(t *testing.T) {
		mockBusinessUsecase.On("ResolveBySlug", mock.Anything, "ghost").Return(nil, assert.AnError)

		jsonBody, _ := json.Marshal(requests.Login{Username: "admin", Password: "secret123"})

		req := httptest.NewRequest("POST", "/businesses/ghost/auth/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Logout without a token", func(t *testing.T) {
		mockBusinessUsecase.On("ResolveBySlug", mock.Anything, "magicbeautycol").Return(business, nil)

		req := httptest.NewRequest("POST", "/businesses/magicbeautycol/auth/logout", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized when the token is missing")
		mockAuthUsecase.AssertNotCalled(t, "LogoutUser", mock.Anything, mock.Anything)
	})
}
