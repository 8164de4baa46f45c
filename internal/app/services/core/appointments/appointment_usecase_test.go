package appointments

import (
	"context"
	"testing"
	"time"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/app/services/core/schedule"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockAppointmentRepository struct {
	mock.Mock
}

func (m *mockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) FindAppointmentByID(ctx context.Context, businessID, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, businessID, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) FindAppointments(ctx context.Context, businessID string, filter *requests.QueryParams) ([]models.Appointment, error) {
	args := m.Called(ctx, businessID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) FindActiveAppointmentsByDate(ctx context.Context, businessID, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, businessID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

type mockServiceRepository struct {
	mock.Mock
}

func (m *mockServiceRepository) FindServicesByBusinessID(ctx context.Context, businessID string) ([]models.Service, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *mockServiceRepository) FindServiceByID(ctx context.Context, businessID, serviceID string) (*models.Service, error) {
	args := m.Called(ctx, businessID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *mockServiceRepository) CreateService(ctx context.Context, service *models.Service) (*models.Service, error) {
	args := m.Called(ctx, service)
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *mockServiceRepository) UpdateService(ctx context.Context, service *models.Service) (*models.Service, error) {
	args := m.Called(ctx, service)
	return args.Get(0).(*models.Service), args.Error(1)
}

type mockWorkerRepository struct {
	mock.Mock
}

func (m *mockWorkerRepository) FindWorkersByBusinessID(ctx context.Context, businessID string) ([]models.Worker, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Worker), args.Error(1)
}

func (m *mockWorkerRepository) FindActiveWorkersByBusinessID(ctx context.Context, businessID string) ([]models.Worker, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Worker), args.Error(1)
}

func (m *mockWorkerRepository) FindWorkerByID(ctx context.Context, businessID, workerID string) (*models.Worker, error) {
	args := m.Called(ctx, businessID, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Worker), args.Error(1)
}

func (m *mockWorkerRepository) CreateWorker(ctx context.Context, worker *models.Worker) (*models.Worker, error) {
	args := m.Called(ctx, worker)
	return args.Get(0).(*models.Worker), args.Error(1)
}

func (m *mockWorkerRepository) UpdateWorker(ctx context.Context, worker *models.Worker) (*models.Worker, error) {
	args := m.Called(ctx, worker)
	return args.Get(0).(*models.Worker), args.Error(1)
}

type mockLockerService struct {
	mock.Mock
}

func (m *mockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) PublishAppointmentEvent(ctx context.Context, event *contracts.AppointmentEvent) {
	m.Called(ctx, event)
}

type usecaseMocks struct {
	appointments *mockAppointmentRepository
	services     *mockServiceRepository
	workers      *mockWorkerRepository
	locker       *mockLockerService
	publisher    *mockEventPublisher
}

func newTestUsecase() (*appointmentUsecase, *usecaseMocks) {
	m := &usecaseMocks{
		appointments: new(mockAppointmentRepository),
		services:     new(mockServiceRepository),
		workers:      new(mockWorkerRepository),
		locker:       new(mockLockerService),
		publisher:    new(mockEventPublisher),
	}
	uc := &appointmentUsecase{
		AppointmentRepository: m.appointments,
		ServiceRepository:     m.services,
		WorkerRepository:      m.workers,
		LockService:           m.locker,
		EventPublisher:        m.publisher,
		Log:                   zap.NewNop(),
	}
	return uc, m
}

var (
	testBusiness = &models.Business{ID: "biz1", Name: "Magic Beauty", Slug: "magicbeautycol", Active: true}
	testService  = &models.Service{ID: "svc1", BusinessID: "biz1", Name: "Corte de cabello", DurationMinutes: 30, Active: true}
	workerAna    = models.Worker{ID: "w1", BusinessID: "biz1", Name: "Ana", Active: true}
	workerLuis   = models.Worker{ID: "w2", BusinessID: "biz1", Name: "Luis", Active: true}
)

func expectLock(m *usecaseMocks) {
	m.locker.On("TryLock", mock.Anything, "booking:biz1:2026-09-10", mock.Anything).Return(true, "lockval", nil)
	m.locker.On("Unlock", mock.Anything, "booking:biz1:2026-09-10", "lockval").Return(nil)
}

func TestCreateAppointmentAutoAssignment(t *testing.T) {
	t.Run("assigns first worker by name when roster is free", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.services.On("FindServiceByID", mock.Anything, "biz1", "svc1").Return(testService, nil)
		expectLock(m)
		m.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "biz1", "2026-09-10").Return([]models.Appointment{}, nil)
		m.workers.On("FindActiveWorkersByBusinessID", mock.Anything, "biz1").Return([]models.Worker{workerAna, workerLuis}, nil)
		m.appointments.On("CreateAppointment", mock.Anything, mock.Anything).Return(&models.Appointment{
			ID: "appt1", BusinessID: "biz1", WorkerID: "w1", WorkerName: "Ana",
			Date: "2026-09-10", Time: "10:00", ServiceDuration: 30,
			Status: constvars.AppointmentStatusPending,
		}, nil)
		m.publisher.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return()

		result, err := uc.CreateAppointment(context.Background(), testBusiness, &requests.CreateAppointment{
			ServiceID: "svc1", Date: "2026-09-10", Time: "10:00", ClientName: "Sofia",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Ana", result.WorkerName)
		assert.Equal(t, constvars.AppointmentStatusPending, result.Status)
	})

	t.Run("skips busy worker and assigns the next one", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.services.On("FindServiceByID", mock.Anything, "biz1", "svc1").Return(testService, nil)
		expectLock(m)
		m.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "biz1", "2026-09-10").Return([]models.Appointment{
			{ID: "busy", WorkerID: "w1", WorkerName: "Ana", Date: "2026-09-10", Time: "10:00", ServiceDuration: 30, Status: constvars.AppointmentStatusPending},
		}, nil)
		m.workers.On("FindActiveWorkersByBusinessID", mock.Anything, "biz1").Return([]models.Worker{workerAna, workerLuis}, nil)
		m.appointments.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.WorkerID == "w2" && a.WorkerName == "Luis"
		})).Return(&models.Appointment{ID: "appt2", WorkerID: "w2", WorkerName: "Luis", Status: constvars.AppointmentStatusPending}, nil)
		m.publisher.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return()

		result, err := uc.CreateAppointment(context.Background(), testBusiness, &requests.CreateAppointment{
			ServiceID: "svc1", Date: "2026-09-10", Time: "10:00", ClientName: "Sofia",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Luis", result.WorkerName)
	})

	t.Run("rejects when every worker is busy", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.services.On("FindServiceByID", mock.Anything, "biz1", "svc1").Return(testService, nil)
		expectLock(m)
		m.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "biz1", "2026-09-10").Return([]models.Appointment{
			{ID: "b1", WorkerID: "w1", Date: "2026-09-10", Time: "10:00", ServiceDuration: 30, Status: constvars.AppointmentStatusPending},
			{ID: "b2", WorkerID: "w2", Date: "2026-09-10", Time: "10:00", ServiceDuration: 30, Status: constvars.AppointmentStatusConfirmed},
		}, nil)
		m.workers.On("FindActiveWorkersByBusinessID", mock.Anything, "biz1").Return([]models.Worker{workerAna, workerLuis}, nil)

		_, err := uc.CreateAppointment(context.Background(), testBusiness, &requests.CreateAppointment{
			ServiceID: "svc1", Date: "2026-09-10", Time: "10:00", ClientName: "Sofia",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("detects overlap with an offset shorter booking", func(t *testing.T) {
		uc, m := newTestUsecase()
		shortService := &models.Service{ID: "svc2", BusinessID: "biz1", Name: "Retoque", DurationMinutes: 15, Active: true}
		m.services.On("FindServiceByID", mock.Anything, "biz1", "svc2").Return(shortService, nil)
		expectLock(m)
		m.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "biz1", "2026-09-10").Return([]models.Appointment{
			{ID: "busy", WorkerID: "w1", Date: "2026-09-10", Time: "10:00", ServiceDuration: 30, Status: constvars.AppointmentStatusPending},
		}, nil)
		m.workers.On("FindWorkerByID", mock.Anything, "biz1", "w1").Return(&workerAna, nil)
		m.appointments.On("CreateAppointment", mock.Anything, mock.Anything).Return(&models.Appointment{
			ID: "appt4", WorkerID: "w1", WorkerName: "Ana", Status: constvars.AppointmentStatusPending,
		}, nil)
		m.publisher.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return()

		_, err := uc.CreateAppointment(context.Background(), testBusiness, &requests.CreateAppointment{
			ServiceID: "svc2", Date: "2026-09-10", Time: "10:30", ClientName: "Sofia", WorkerID: "w1",
		})
		assert.NoError(t, err, "back-to-back must be allowed")
	})

	t.Run("rejects preferred worker with overlapping booking", func(t *testing.T) {
		uc, m := newTestUsecase()
		shortService := &models.Service{ID: "svc2", BusinessID: "biz1", Name: "Retoque", DurationMinutes: 15, Active: true}
		m.services.On("FindServiceByID", mock.Anything, "biz1", "svc2").Return(shortService, nil)
		expectLock(m)
		m.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "biz1", "2026-09-10").Return([]models.Appointment{
			{ID: "busy", WorkerID: "w1", WorkerName: "Ana", Date: "2026-09-10", Time: "10:00", ServiceDuration: 30, Status: constvars.AppointmentStatusPending},
		}, nil)
		m.workers.On("FindWorkerByID", mock.Anything, "biz1", "w1").Return(&workerAna, nil)

		_, err := uc.CreateAppointment(context.Background(), testBusiness, &requests.CreateAppointment{
			ServiceID: "svc2", Date: "2026-09-10", Time: "10:15", ClientName: "Sofia", WorkerID: "w1",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("ignores cancelled appointments when checking conflicts", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.services.On("FindServiceByID", mock.Anything, "biz1", "svc1").Return(testService, nil)
		expectLock(m)
		m.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "biz1", "2026-09-10").Return([]models.Appointment{
			{ID: "old", WorkerID: "w1", Date: "2026-09-10", Time: "10:00", ServiceDuration: 30, Status: constvars.AppointmentStatusCancelled},
		}, nil)
		m.workers.On("FindWorkerByID", mock.Anything, "biz1", "w1").Return(&workerAna, nil)
		m.appointments.On("CreateAppointment", mock.Anything, mock.Anything).Return(&models.Appointment{
			ID: "appt3", WorkerID: "w1", WorkerName: "Ana", Status: constvars.AppointmentStatusPending,
		}, nil)
		m.publisher.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return()

		_, err := uc.CreateAppointment(context.Background(), testBusiness, &requests.CreateAppointment{
			ServiceID: "svc1", Date: "2026-09-10", Time: "10:00", ClientName: "Sofia", WorkerID: "w1",
		})

		assert.NoError(t, err)
	})

	t.Run("rejects time outside opening hours", func(t *testing.T) {
		uc, _ := newTestUsecase()
		_, err := uc.CreateAppointment(context.Background(), testBusiness, &requests.CreateAppointment{
			ServiceID: "svc1", Date: "2026-09-10", Time: "08:30", ClientName: "Sofia",
		})
		assert.Error(t, err)
	})

	t.Run("rejects when booking lock is held elsewhere", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.services.On("FindServiceByID", mock.Anything, "biz1", "svc1").Return(testService, nil)
		m.locker.On("TryLock", mock.Anything, "booking:biz1:2026-09-10", mock.Anything).Return(false, "", nil)

		_, err := uc.CreateAppointment(context.Background(), testBusiness, &requests.CreateAppointment{
			ServiceID: "svc1", Date: "2026-09-10", Time: "10:00", ClientName: "Sofia",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})
}

func TestConfirmAppointment(t *testing.T) {
	t.Run("rejects confirmation without assigned worker", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.appointments.On("FindAppointmentByID", mock.Anything, "biz1", "appt1").Return(&models.Appointment{
			ID: "appt1", BusinessID: "biz1", Date: "2026-09-10", Time: "10:00",
			ServiceDuration: 30, Status: constvars.AppointmentStatusPending,
		}, nil)

		_, err := uc.ConfirmAppointment(context.Background(), testBusiness, "appt1")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("rejects confirmation of cancelled appointment", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.appointments.On("FindAppointmentByID", mock.Anything, "biz1", "appt1").Return(&models.Appointment{
			ID: "appt1", BusinessID: "biz1", WorkerID: "w1", Status: constvars.AppointmentStatusCancelled,
		}, nil)

		_, err := uc.ConfirmAppointment(context.Background(), testBusiness, "appt1")
		assert.Error(t, err)
	})

	t.Run("confirms a pending appointment with a free worker", func(t *testing.T) {
		uc, m := newTestUsecase()
		appointment := &models.Appointment{
			ID: "appt1", BusinessID: "biz1", WorkerID: "w1", WorkerName: "Ana",
			Date: "2026-09-10", Time: "10:00", ServiceDuration: 30,
			Status: constvars.AppointmentStatusPending,
		}
		m.appointments.On("FindAppointmentByID", mock.Anything, "biz1", "appt1").Return(appointment, nil)
		m.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "biz1", "2026-09-10").Return([]models.Appointment{*appointment}, nil)
		m.appointments.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.Status == constvars.AppointmentStatusConfirmed
		})).Return(appointment, nil)
		m.publisher.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return()

		result, err := uc.ConfirmAppointment(context.Background(), testBusiness, "appt1")

		assert.NoError(t, err)
		assert.NotNil(t, result)
	})
}

func TestCancelAppointment(t *testing.T) {
	t.Run("cancel is idempotent", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.appointments.On("FindAppointmentByID", mock.Anything, "biz1", "appt1").Return(&models.Appointment{
			ID: "appt1", BusinessID: "biz1", Status: constvars.AppointmentStatusCancelled,
		}, nil)

		result, err := uc.CancelAppointment(context.Background(), testBusiness, "appt1")

		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, result.Status)
		m.appointments.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("cancels any non-cancelled appointment", func(t *testing.T) {
		uc, m := newTestUsecase()
		appointment := &models.Appointment{
			ID: "appt1", BusinessID: "biz1", WorkerID: "w1",
			Status: constvars.AppointmentStatusConfirmed,
		}
		m.appointments.On("FindAppointmentByID", mock.Anything, "biz1", "appt1").Return(appointment, nil)
		m.appointments.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.Status == constvars.AppointmentStatusCancelled
		})).Return(appointment, nil)
		m.publisher.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return()

		result, err := uc.CancelAppointment(context.Background(), testBusiness, "appt1")

		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, result.Status)
	})
}

func TestReassignAppointment(t *testing.T) {
	t.Run("rejects reassignment to a busy worker", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.appointments.On("FindAppointmentByID", mock.Anything, "biz1", "appt1").Return(&models.Appointment{
			ID: "appt1", BusinessID: "biz1", WorkerID: "w1", WorkerName: "Ana",
			Date: "2026-09-10", Time: "10:00", ServiceDuration: 30,
			Status: constvars.AppointmentStatusPending,
		}, nil)
		m.workers.On("FindWorkerByID", mock.Anything, "biz1", "w2").Return(&workerLuis, nil)
		m.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "biz1", "2026-09-10").Return([]models.Appointment{
			{ID: "other", WorkerID: "w2", Date: "2026-09-10", Time: "10:00", ServiceDuration: 30, Status: constvars.AppointmentStatusConfirmed},
		}, nil)

		_, err := uc.ReassignAppointment(context.Background(), testBusiness, "appt1", &requests.ReassignAppointment{WorkerID: "w2"})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("reassigns to a free worker", func(t *testing.T) {
		uc, m := newTestUsecase()
		appointment := &models.Appointment{
			ID: "appt1", BusinessID: "biz1", WorkerID: "w1", WorkerName: "Ana",
			Date: "2026-09-10", Time: "10:00", ServiceDuration: 30,
			Status: constvars.AppointmentStatusPending,
		}
		m.appointments.On("FindAppointmentByID", mock.Anything, "biz1", "appt1").Return(appointment, nil)
		m.workers.On("FindWorkerByID", mock.Anything, "biz1", "w2").Return(&workerLuis, nil)
		m.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "biz1", "2026-09-10").Return([]models.Appointment{*appointment}, nil)
		m.appointments.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.WorkerID == "w2" && a.WorkerName == "Luis"
		})).Return(appointment, nil)
		m.publisher.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return()

		_, err := uc.ReassignAppointment(context.Background(), testBusiness, "appt1", &requests.ReassignAppointment{WorkerID: "w2"})

		assert.NoError(t, err)
	})
}

func TestFindAllRoleFiltering(t *testing.T) {
	t.Run("employee sessions only see their own worker", func(t *testing.T) {
		uc, m := newTestUsecase()
		session := &models.Session{Role: constvars.RoleEmpleado, WorkerID: "w1"}
		m.workers.On("FindWorkerByID", mock.Anything, "biz1", "w1").Return(&workerAna, nil)
		m.appointments.On("FindAppointments", mock.Anything, "biz1", mock.MatchedBy(func(q *requests.QueryParams) bool {
			return q.WorkerID == "w1" && q.WorkerName == "Ana"
		})).Return([]models.Appointment{}, nil)

		_, err := uc.FindAll(context.Background(), testBusiness, session, &requests.QueryParams{})
		assert.NoError(t, err)
	})

	t.Run("employee without worker link sees nothing", func(t *testing.T) {
		uc, m := newTestUsecase()
		session := &models.Session{Role: constvars.RoleEmpleado}

		result, err := uc.FindAll(context.Background(), testBusiness, session, &requests.QueryParams{})

		assert.NoError(t, err)
		assert.Empty(t, result)
		m.appointments.AssertNotCalled(t, "FindAppointments", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("admin sessions see everything", func(t *testing.T) {
		uc, m := newTestUsecase()
		session := &models.Session{Role: constvars.RoleAdmin}
		m.appointments.On("FindAppointments", mock.Anything, "biz1", mock.MatchedBy(func(q *requests.QueryParams) bool {
			return q.WorkerID == ""
		})).Return([]models.Appointment{{ID: "a1"}, {ID: "a2"}}, nil)

		result, err := uc.FindAll(context.Background(), testBusiness, session, &requests.QueryParams{})

		assert.NoError(t, err)
		assert.Len(t, result, 2)
	})
}

func TestGetAvailability(t *testing.T) {
	t.Run("lists only the free grid times", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.services.On("FindServiceByID", mock.Anything, "biz1", "svc1").Return(testService, nil)
		m.workers.On("FindActiveWorkersByBusinessID", mock.Anything, "biz1").Return([]models.Worker{workerAna}, nil)
		m.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "biz1", "2026-09-10").Return([]models.Appointment{
			{ID: "busy", WorkerID: "w1", Date: "2026-09-10", Time: "10:00", ServiceDuration: 30, Status: constvars.AppointmentStatusPending},
		}, nil)

		result, err := uc.GetAvailability(context.Background(), testBusiness, &requests.AvailabilityQuery{ServiceID: "svc1", Date: "2026-09-10"})

		assert.NoError(t, err)
		assert.NotContains(t, result.Times, "10:00")
		assert.Contains(t, result.Times, "09:30")
		assert.Contains(t, result.Times, "10:30")
	})

	t.Run("second worker keeps the slot available", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.services.On("FindServiceByID", mock.Anything, "biz1", "svc1").Return(testService, nil)
		m.workers.On("FindActiveWorkersByBusinessID", mock.Anything, "biz1").Return([]models.Worker{workerAna, workerLuis}, nil)
		m.appointments.On("FindActiveAppointmentsByDate", mock.Anything, "biz1", "2026-09-10").Return([]models.Appointment{
			{ID: "busy", WorkerID: "w1", Date: "2026-09-10", Time: "10:00", ServiceDuration: 30, Status: constvars.AppointmentStatusPending},
		}, nil)

		result, err := uc.GetAvailability(context.Background(), testBusiness, &requests.AvailabilityQuery{ServiceID: "svc1", Date: "2026-09-10"})

		assert.NoError(t, err)
		assert.Contains(t, result.Times, "10:00")
	})
}

func TestConflictChecks(t *testing.T) {
	booked := []models.Appointment{
		{ID: "a1", WorkerID: "w1", WorkerName: "Ana", Date: "2026-09-10", Time: "10:00", ServiceDuration: 30, Status: constvars.AppointmentStatusConfirmed},
	}

	t.Run("exact start time conflicts", func(t *testing.T) {
		assert.True(t, hasExactConflict(booked, &workerAna, "10:00"))
		assert.False(t, hasExactConflict(booked, &workerAna, "10:15"))
		assert.False(t, hasExactConflict(booked, &workerLuis, "10:00"))
	})

	t.Run("exact conflict implies range conflict", func(t *testing.T) {
		slot, ok := schedule.NewTimeSlot("10:00", 30)
		assert.True(t, ok)
		assert.True(t, hasExactConflict(booked, &workerAna, "10:00"))
		assert.True(t, hasRangeConflict(booked, &workerAna, slot, ""))
	})

	t.Run("range conflict catches offset starts the exact check misses", func(t *testing.T) {
		slot, ok := schedule.NewTimeSlot("10:15", 15)
		assert.True(t, ok)
		assert.False(t, hasExactConflict(booked, &workerAna, "10:15"))
		assert.True(t, hasRangeConflict(booked, &workerAna, slot, ""))
	})

	t.Run("rows carrying only the worker name still match", func(t *testing.T) {
		legacy := []models.Appointment{
			{ID: "a2", WorkerName: "Ana", Date: "2026-09-10", Time: "11:00", ServiceDuration: 30, Status: constvars.AppointmentStatusPending},
		}
		slot, ok := schedule.NewTimeSlot("11:00", 30)
		assert.True(t, ok)
		assert.True(t, hasExactConflict(legacy, &workerAna, "11:00"))
		assert.True(t, hasRangeConflict(legacy, &workerAna, slot, ""))
	})
}
