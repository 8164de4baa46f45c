package routers

import (
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/services/core/workers"

	"github.com/go-chi/chi/v5"
)

func attachWorkerRoutes(router chi.Router, middlewares *middlewares.Middlewares, workerController *workers.WorkerController) {
	router.With(middlewares.Authenticate).Get("/", workerController.FindAll)
	router.With(middlewares.Authenticate).Get("/{workerID}", workerController.FindByID)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/", workerController.CreateWorker)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Patch("/{workerID}", workerController.UpdateWorker)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/{workerID}", workerController.DeleteWorker)
}
