package routers

import (
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/services/core/catalog"

	"github.com/go-chi/chi/v5"
)

func attachServiceRoutes(router chi.Router, middlewares *middlewares.Middlewares, serviceController *catalog.ServiceController) {
	router.Get("/", serviceController.FindAll)
	router.Get("/{serviceID}", serviceController.FindByID)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/", serviceController.CreateService)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Patch("/{serviceID}", serviceController.UpdateService)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/{serviceID}", serviceController.DeleteService)
}
