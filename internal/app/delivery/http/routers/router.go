package routers

import (
	"curaflow-service/internal/app/config"
	"curaflow-service/internal/app/delivery/http/controllers"
	"curaflow-service/internal/app/delivery/http/middlewares"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	teamController *controllers.TeamController,
	userController *controllers.UserController,
	patientController *controllers.PatientController,
	templateController *controllers.TemplateController,
	questionnaireController *controllers.QuestionnaireController,
	conversationController *controllers.ConversationController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/teams", func(r chi.Router) {
				attachTeamRouter(r, middlewares, teamController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRouter(r, middlewares, userController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRouter(r, middlewares, patientController, questionnaireController)
			})

			r.Route("/templates", func(r chi.Router) {
				attachTemplateRouter(r, middlewares, templateController)
			})

			r.Route("/questionnaires", func(r chi.Router) {
				attachQuestionnaireRouter(r, middlewares, questionnaireController)
			})

			r.Route("/conversations", func(r chi.Router) {
				attachConversationRouter(r, middlewares, conversationController)
			})
		})
	})
}
