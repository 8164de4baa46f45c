package catalog

import (
	"context"
	"net/http"
	"time"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ServiceController struct {
	Log            *zap.Logger
	ServiceUsecase contracts.ServiceUsecase
}

func NewServiceController(logger *zap.Logger, serviceUsecase contracts.ServiceUsecase) *ServiceController {
	return &ServiceController{
		Log:            logger,
		ServiceUsecase: serviceUsecase,
	}
}

func (ctrl *ServiceController) FindAll(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ServiceUsecase.FindAll(ctx, business)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ServiceListSuccess, result)
}

func (ctrl *ServiceController) FindByID(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)
	serviceID := chi.URLParam(r, constvars.URLParamServiceID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ServiceUsecase.FindByID(ctx, business, serviceID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ServiceListSuccess, result)
}

func (ctrl *ServiceController) CreateService(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)

	request := new(requests.CreateService)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateServiceRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ServiceUsecase.CreateService(ctx, business, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ServiceCreatedSuccess, result)
}

func (ctrl *ServiceController) UpdateService(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)
	serviceID := chi.URLParam(r, constvars.URLParamServiceID)

	request := new(requests.UpdateService)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ServiceUsecase.UpdateService(ctx, business, serviceID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ServiceUpdatedSuccess, result)
}

func (ctrl *ServiceController) DeleteService(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)
	serviceID := chi.URLParam(r, constvars.URLParamServiceID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.ServiceUsecase.DeleteService(ctx, business, serviceID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ServiceDeletedSuccess, nil)
}
