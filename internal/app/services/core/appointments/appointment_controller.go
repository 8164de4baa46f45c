package appointments

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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)

	request := new(requests.CreateAppointment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateAppointmentRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, business, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentCreatedSuccess, result)
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)
	session := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)

	queryParams := &requests.QueryParams{
		Date: r.URL.Query().Get("date"),
	}
	if session.IsAdmin() {
		queryParams.WorkerID = r.URL.Query().Get("workerId")
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindAll(ctx, business, session, queryParams)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentListSuccess, result)
}

// UpdateAppointment only accepts the allow-listed fields; any unknown key
// fails the decode before anything touches the database.
func (ctrl *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	request := new(requests.UpdateAppointment)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnknownUpdateField(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.UpdateAppointment(ctx, business, appointmentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentUpdatedSuccess, result)
}

func (ctrl *AppointmentController) ConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.ConfirmAppointment(ctx, business, appointmentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentConfirmedSuccess, result)
}

func (ctrl *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.CancelAppointment(ctx, business, appointmentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCancelledSuccess, result)
}

func (ctrl *AppointmentController) ReassignAppointment(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	request := new(requests.ReassignAppointment)
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

	result, err := ctrl.AppointmentUsecase.ReassignAppointment(ctx, business, appointmentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentReassignedSuccess, result)
}

func (ctrl *AppointmentController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business)

	query := &requests.AvailabilityQuery{
		ServiceID: r.URL.Query().Get("serviceId"),
		Date:      r.URL.Query().Get("date"),
	}

	err := utils.ValidateStruct(query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.GetAvailability(ctx, business, query)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityGetSuccess, result)
}
