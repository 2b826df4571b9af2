package routers

import (
	"curaflow-service/internal/app/delivery/http/controllers"
	"curaflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRouter(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Post("/", userController.CreateUser)
	router.Get("/", userController.FindAllUsers)
	router.Get("/{user_id}", userController.FindUserByID)
}
