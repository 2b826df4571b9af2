package routers

import (
	"curaflow-service/internal/app/delivery/http/controllers"
	"curaflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTeamRouter(router chi.Router, middlewares *middlewares.Middlewares, teamController *controllers.TeamController) {
	router.Post("/", teamController.CreateTeam)
	router.Get("/", teamController.FindAllTeams)
	router.Get("/{team_id}", teamController.FindTeamByID)
}
