package businesses

import (
	"context"
	"net/http"
	"time"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BusinessController struct {
	Log             *zap.Logger
	BusinessUsecase contracts.BusinessUsecase
}

func NewBusinessController(logger *zap.Logger, businessUsecase contracts.BusinessUsecase) *BusinessController {
	return &BusinessController{
		Log:             logger,
		BusinessUsecase: businessUsecase,
	}
}

func (ctrl *BusinessController) GetBusinessBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, constvars.URLParamBusinessSlug)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.BusinessUsecase.FindBySlug(ctx, slug)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BusinessGetSuccess, result)
}
