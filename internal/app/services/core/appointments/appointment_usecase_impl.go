package appointments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/app/services/core/schedule"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	ServiceRepository     contracts.ServiceRepository
	WorkerRepository      contracts.WorkerRepository
	LockService           contracts.LockerService
	EventPublisher        contracts.EventPublisher
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	serviceRepository contracts.ServiceRepository,
	workerRepository contracts.WorkerRepository,
	lockService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			ServiceRepository:     serviceRepository,
			WorkerRepository:      workerRepository,
			LockService:           lockService,
			EventPublisher:        eventPublisher,
			Log:                   logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, business *models.Business, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingTimeKey, request.Time),
	)

	if !schedule.WithinHours(request.Time) {
		return nil, exceptions.ErrTimeOutsideGrid(nil)
	}

	service, err := uc.findBookableService(ctx, business, request.ServiceID)
	if err != nil {
		return nil, err
	}

	// one booking per business day flows through the lock, so the
	// conflict check and the insert cannot interleave with another request
	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, business.ID, request.Date)
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, constvars.BookingLockTTLInSeconds*time.Second)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingLockNotAcquired(nil)
	}
	defer func() {
		if unlockErr := uc.LockService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("appointmentUsecase.CreateAppointment error releasing booking lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	dayAppointments, err := uc.AppointmentRepository.FindActiveAppointmentsByDate(ctx, business.ID, request.Date)
	if err != nil {
		return nil, err
	}

	requestedSlot, ok := schedule.NewTimeSlot(request.Time, service.DurationMinutes)
	if !ok {
		return nil, exceptions.ErrCannotParseTime(nil)
	}

	var assignedWorker *models.Worker
	if request.WorkerID != "" {
		worker, err := uc.findBookableWorker(ctx, business, request.WorkerID)
		if err != nil {
			return nil, err
		}
		if hasRangeConflict(dayAppointments, worker, requestedSlot, "") {
			return nil, exceptions.ErrTimeSlotConflict(worker.Name, request.Date, request.Time)
		}
		assignedWorker = worker
	} else {
		assignedWorker, err = uc.autoAssignWorker(ctx, business, dayAppointments, requestedSlot)
		if err != nil {
			return nil, err
		}
		if assignedWorker == nil {
			return nil, exceptions.ErrNoWorkerAvailable(request.Date, request.Time)
		}
	}

	appointment := &models.Appointment{
		BusinessID:      business.ID,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		ServiceDuration: service.DurationMinutes,
		Date:            request.Date,
		Time:            request.Time,
		WorkerID:        assignedWorker.ID,
		WorkerName:      assignedWorker.Name,
		ClientName:      request.ClientName,
		ClientPhone:     request.ClientPhone,
		Status:          constvars.AppointmentStatusPending,
	}

	created, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, created.ID),
		zap.String(constvars.LoggingWorkerNameKey, created.WorkerName),
	)

	uc.publishEvent(ctx, constvars.AppointmentEventCreated, created)
	result := buildAppointmentResponse(created)
	return &result, nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, business *models.Business, session *models.Session, queryParamsRequest *requests.QueryParams) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
		zap.Any(constvars.LoggingSessionDataKey, session),
	)

	if session.IsEmpleado() {
		if session.WorkerID == "" {
			return []responses.Appointment{}, nil
		}
		queryParamsRequest.WorkerID = session.WorkerID
		worker, err := uc.WorkerRepository.FindWorkerByID(ctx, business.ID, session.WorkerID)
		if err != nil {
			return nil, err
		}
		if worker != nil {
			queryParamsRequest.WorkerName = worker.Name
		}
	}

	appointments, err := uc.AppointmentRepository.FindAppointments(ctx, business.ID, queryParamsRequest)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		result = append(result, buildAppointmentResponse(&appointment))
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	return result, nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, business *models.Business, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findExisting(ctx, business, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.IsCancelled() {
		return nil, exceptions.ErrAppointmentCancelled(nil)
	}

	previousStatus := appointment.Status

	if request.ServiceID != nil {
		service, err := uc.findBookableService(ctx, business, *request.ServiceID)
		if err != nil {
			return nil, err
		}
		appointment.ServiceID = service.ID
		appointment.ServiceName = service.Name
		appointment.ServiceDuration = service.DurationMinutes
	}
	if request.Date != nil {
		appointment.Date = *request.Date
	}
	if request.Time != nil {
		if !schedule.WithinHours(*request.Time) {
			return nil, exceptions.ErrTimeOutsideGrid(nil)
		}
		appointment.Time = *request.Time
	}
	if request.WorkerID != nil {
		if *request.WorkerID == "" {
			appointment.WorkerID = ""
			appointment.WorkerName = ""
		} else {
			worker, err := uc.findBookableWorker(ctx, business, *request.WorkerID)
			if err != nil {
				return nil, err
			}
			appointment.WorkerID = worker.ID
			appointment.WorkerName = worker.Name
		}
	}
	if request.Status != nil {
		appointment.Status = *request.Status
	}

	if appointment.Status == constvars.AppointmentStatusConfirmed && appointment.WorkerID == "" {
		return nil, exceptions.ErrConfirmWithoutWorker(nil)
	}

	if !appointment.IsCancelled() && appointment.WorkerID != "" {
		if err := uc.ensureNoRangeConflict(ctx, business, appointment); err != nil {
			return nil, err
		}
	}

	updated, err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if updated.Status != previousStatus {
		switch updated.Status {
		case constvars.AppointmentStatusConfirmed:
			uc.publishEvent(ctx, constvars.AppointmentEventConfirmed, updated)
		case constvars.AppointmentStatusCancelled:
			uc.publishEvent(ctx, constvars.AppointmentEventCancelled, updated)
		}
	}

	result := buildAppointmentResponse(updated)
	return &result, nil
}

func (uc *appointmentUsecase) ConfirmAppointment(ctx context.Context, business *models.Business, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ConfirmAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findExisting(ctx, business, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.IsCancelled() {
		return nil, exceptions.ErrAppointmentCancelled(nil)
	}
	if appointment.WorkerID == "" {
		return nil, exceptions.ErrConfirmWithoutWorker(nil)
	}

	if err := uc.ensureNoRangeConflict(ctx, business, appointment); err != nil {
		return nil, err
	}

	appointment.Status = constvars.AppointmentStatusConfirmed
	updated, err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constvars.AppointmentEventConfirmed, updated)
	result := buildAppointmentResponse(updated)
	return &result, nil
}

// CancelAppointment is idempotent: cancelling twice leaves the record as-is.
func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, business *models.Business, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findExisting(ctx, business, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.IsCancelled() {
		result := buildAppointmentResponse(appointment)
		return &result, nil
	}

	appointment.Status = constvars.AppointmentStatusCancelled
	updated, err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constvars.AppointmentEventCancelled, updated)
	result := buildAppointmentResponse(updated)
	return &result, nil
}

func (uc *appointmentUsecase) ReassignAppointment(ctx context.Context, business *models.Business, appointmentID string, request *requests.ReassignAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ReassignAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingWorkerIDKey, request.WorkerID),
	)

	appointment, err := uc.findExisting(ctx, business, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.IsCancelled() {
		return nil, exceptions.ErrAppointmentCancelled(nil)
	}

	worker, err := uc.findBookableWorker(ctx, business, request.WorkerID)
	if err != nil {
		return nil, err
	}

	appointment.WorkerID = worker.ID
	appointment.WorkerName = worker.Name

	if err := uc.ensureNoRangeConflict(ctx, business, appointment); err != nil {
		return nil, err
	}

	updated, err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constvars.AppointmentEventReassigned, updated)
	result := buildAppointmentResponse(updated)
	return &result, nil
}

func (uc *appointmentUsecase) GetAvailability(ctx context.Context, business *models.Business, query *requests.AvailabilityQuery) (*responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
		zap.String(constvars.LoggingServiceIDKey, query.ServiceID),
		zap.String(constvars.LoggingDateKey, query.Date),
	)

	service, err := uc.findBookableService(ctx, business, query.ServiceID)
	if err != nil {
		return nil, err
	}

	workers, err := uc.WorkerRepository.FindActiveWorkersByBusinessID(ctx, business.ID)
	if err != nil {
		return nil, err
	}

	dayAppointments, err := uc.AppointmentRepository.FindActiveAppointmentsByDate(ctx, business.ID, query.Date)
	if err != nil {
		return nil, err
	}

	times := make([]string, 0)
	for _, gridTime := range schedule.GridTimes() {
		slot, ok := schedule.NewTimeSlot(gridTime, service.DurationMinutes)
		if !ok {
			continue
		}
		for i := range workers {
			if !hasRangeConflict(dayAppointments, &workers[i], slot, "") {
				times = append(times, gridTime)
				break
			}
		}
	}

	return &responses.Availability{Date: query.Date, Times: times}, nil
}

func (uc *appointmentUsecase) findExisting(ctx context.Context, business *models.Business, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, business.ID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) findBookableService(ctx context.Context, business *models.Business, serviceID string) (*models.Service, error) {
	service, err := uc.ServiceRepository.FindServiceByID(ctx, business.ID, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil || !service.Active {
		return nil, exceptions.ErrServiceNotExist(nil)
	}
	return service, nil
}

func (uc *appointmentUsecase) findBookableWorker(ctx context.Context, business *models.Business, workerID string) (*models.Worker, error) {
	worker, err := uc.WorkerRepository.FindWorkerByID(ctx, business.ID, workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil || !worker.Active {
		return nil, exceptions.ErrWorkerNotExist(nil)
	}
	return worker, nil
}

// autoAssignWorker walks active workers in name order and picks the first
// one free for the slot, so the same roster state always yields the same
// assignment.
func (uc *appointmentUsecase) autoAssignWorker(ctx context.Context, business *models.Business, dayAppointments []models.Appointment, slot schedule.TimeSlot) (*models.Worker, error) {
	workers, err := uc.WorkerRepository.FindActiveWorkersByBusinessID(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	startTime := schedule.FormatMinutes(slot.StartMinutes)
	for i := range workers {
		if hasExactConflict(dayAppointments, &workers[i], startTime) {
			continue
		}
		if !hasRangeConflict(dayAppointments, &workers[i], slot, "") {
			return &workers[i], nil
		}
	}
	return nil, nil
}

// hasExactConflict reports whether the worker already holds a non-cancelled
// appointment starting at exactly that time. Cheaper than the range check,
// and implied by it whenever durations are positive.
func hasExactConflict(dayAppointments []models.Appointment, worker *models.Worker, startTime string) bool {
	if worker.ID == "" && worker.Name == "" || startTime == "" {
		return false
	}
	for i := range dayAppointments {
		appointment := &dayAppointments[i]
		if appointment.IsCancelled() {
			continue
		}
		if !isSameWorker(appointment, worker) {
			continue
		}
		if appointment.Time == startTime {
			return true
		}
	}
	return false
}

func (uc *appointmentUsecase) ensureNoRangeConflict(ctx context.Context, business *models.Business, appointment *models.Appointment) error {
	dayAppointments, err := uc.AppointmentRepository.FindActiveAppointmentsByDate(ctx, business.ID, appointment.Date)
	if err != nil {
		return err
	}
	slot, ok := schedule.NewTimeSlot(appointment.Time, appointment.ServiceDuration)
	if !ok {
		return exceptions.ErrCannotParseTime(nil)
	}
	worker := &models.Worker{ID: appointment.WorkerID, Name: appointment.WorkerName}
	if hasRangeConflict(dayAppointments, worker, slot, appointment.ID) {
		return exceptions.ErrTimeSlotConflict(appointment.WorkerName, appointment.Date, appointment.Time)
	}
	return nil
}

// hasRangeConflict reports whether any non-cancelled appointment of the
// worker overlaps the slot. excludeID skips the appointment being edited.
// Appointments whose time or duration cannot produce a real interval are
// degenerate and never conflict.
func hasRangeConflict(dayAppointments []models.Appointment, worker *models.Worker, slot schedule.TimeSlot, excludeID string) bool {
	for i := range dayAppointments {
		appointment := &dayAppointments[i]
		if appointment.IsCancelled() {
			continue
		}
		if excludeID != "" && appointment.ID == excludeID {
			continue
		}
		if !isSameWorker(appointment, worker) {
			continue
		}
		bookedSlot, ok := schedule.NewTimeSlot(appointment.Time, appointment.ServiceDuration)
		if !ok {
			continue
		}
		if slot.Overlaps(bookedSlot) {
			return true
		}
	}
	return false
}

// isSameWorker matches by id, falling back to the denormalized name for
// rows that only carry the worker name.
func isSameWorker(appointment *models.Appointment, worker *models.Worker) bool {
	if appointment.WorkerID != "" {
		return appointment.WorkerID == worker.ID
	}
	return worker.Name != "" && appointment.WorkerName == worker.Name
}

func (uc *appointmentUsecase) publishEvent(ctx context.Context, event string, appointment *models.Appointment) {
	uc.EventPublisher.PublishAppointmentEvent(ctx, &contracts.AppointmentEvent{
		Event:         event,
		BusinessID:    appointment.BusinessID,
		AppointmentID: appointment.ID,
		ServiceName:   appointment.ServiceName,
		WorkerName:    appointment.WorkerName,
		ClientName:    appointment.ClientName,
		Date:          appointment.Date,
		Time:          appointment.Time,
		Status:        appointment.Status,
	})
}

func buildAppointmentResponse(appointment *models.Appointment) responses.Appointment {
	return responses.Appointment{
		ID:              appointment.ID,
		ServiceID:       appointment.ServiceID,
		ServiceName:     appointment.ServiceName,
		ServiceDuration: appointment.ServiceDuration,
		Date:            appointment.Date,
		Time:            appointment.Time,
		WorkerID:        appointment.WorkerID,
		WorkerName:      appointment.WorkerName,
		ClientName:      appointment.ClientName,
		ClientPhone:     appointment.ClientPhone,
		Status:          appointment.Status,
	}
}
