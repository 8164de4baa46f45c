package routers

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/services/core/appointments"
	"agenda-service/internal/app/services/core/auth"
	"agenda-service/internal/app/services/core/businesses"
	"agenda-service/internal/app/services/core/catalog"
	"agenda-service/internal/app/services/core/users"
	"agenda-service/internal/app/services/core/workers"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	businessController *businesses.BusinessController,
	authController *auth.AuthController,
	serviceController *catalog.ServiceController,
	workerController *workers.WorkerController,
	userController *users.UserController,
	appointmentController *appointments.AppointmentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/businesses/{businessSlug}", func(r chi.Router) {
				r.Use(middlewares.BusinessResolver)

				r.Get("/", businessController.GetBusinessBySlug)

				r.Route("/auth", func(r chi.Router) {
					attachAuthRoutes(r, middlewares, authController)
				})

				r.Route("/services", func(r chi.Router) {
					attachServiceRoutes(r, middlewares, serviceController)
				})

				r.Route("/workers", func(r chi.Router) {
					attachWorkerRoutes(r, middlewares, workerController)
				})

				r.Route("/users", func(r chi.Router) {
					attachUserRoutes(r, middlewares, userController)
				})

				r.Route("/appointments", func(r chi.Router) {
					attachAppointmentRoutes(r, middlewares, appointmentController)
				})
			})
		})
	})
}
