package routers

import (
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/availability", appointmentController.GetAvailability)
	router.With(middlewares.Authenticate).Get("/", appointmentController.FindAll)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Patch("/{appointmentID}", appointmentController.UpdateAppointment)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/{appointmentID}/confirm", appointmentController.ConfirmAppointment)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/{appointmentID}/cancel", appointmentController.CancelAppointment)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/{appointmentID}/reassign", appointmentController.ReassignAppointment)
}
