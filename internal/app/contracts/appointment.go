package contracts

import (
	"context"

	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, business *models.Business, request *requests.CreateAppointment) (*responses.Appointment, error)
	FindAll(ctx context.Context, business *models.Business, session *models.Session, queryParamsRequest *requests.QueryParams) ([]responses.Appointment, error)
	UpdateAppointment(ctx context.Context, business *models.Business, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
	ConfirmAppointment(ctx context.Context, business *models.Business, appointmentID string) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, business *models.Business, appointmentID string) (*responses.Appointment, error)
	ReassignAppointment(ctx context.Context, business *models.Business, appointmentID string, request *requests.ReassignAppointment) (*responses.Appointment, error)
	GetAvailability(ctx context.Context, business *models.Business, query *requests.AvailabilityQuery) (*responses.Availability, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindAppointmentByID(ctx context.Context, businessID, appointmentID string) (*models.Appointment, error)
	FindAppointments(ctx context.Context, businessID string, filter *requests.QueryParams) ([]models.Appointment, error)
	FindActiveAppointmentsByDate(ctx context.Context, businessID, date string) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
}
