package workers

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

type WorkerController struct {
	Log           *zap.Logger
	WorkerUsecase contracts.WorkerUsecase
}

func NewWorkerController(logger *zap.Logger, workerUsecase contracts.WorkerUsecase) *WorkerController {
	return &WorkerController{
		Log:           logger,
		WorkerUsecase: workerUsecase,
	}
}

func (ctrl *WorkerController) FindAll(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.WorkerUsecase.FindAll(ctx, business)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkerListSuccess, result)
}

func (ctrl *WorkerController) FindByID(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)
	workerID := chi.URLParam(r, constvars.URLParamWorkerID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.WorkerUsecase.FindByID(ctx, business, workerID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkerListSuccess, result)
}

func (ctrl *WorkerController) CreateWorker(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)

	request := new(requests.CreateWorker)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateWorkerRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.WorkerUsecase.CreateWorker(ctx, business, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.WorkerCreatedSuccess, result)
}

func (ctrl *WorkerController) UpdateWorker(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)
	workerID := chi.URLParam(r, constvars.URLParamWorkerID)

	request := new(requests.UpdateWorker)
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

	result, err := ctrl.WorkerUsecase.UpdateWorker(ctx, business, workerID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkerUpdatedSuccess, result)
}

func (ctrl *WorkerController) DeleteWorker(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)
	workerID := chi.URLParam(r, constvars.URLParamWorkerID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.WorkerUsecase.DeleteWorker(ctx, business, workerID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkerDeletedSuccess, nil)
}
