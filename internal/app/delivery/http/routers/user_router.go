package routers

import (
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/", userController.FindAll)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/{userID}", userController.FindByID)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/", userController.CreateUser)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Patch("/{userID}", userController.UpdateUser)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/{userID}", userController.DeleteUser)
}
