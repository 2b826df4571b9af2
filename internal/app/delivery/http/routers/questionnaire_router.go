package routers

import (
	"curaflow-service/internal/app/delivery/http/controllers"
	"curaflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRouter(router chi.Router, middlewares *middlewares.Middlewares, questionnaireController *controllers.QuestionnaireController) {
	router.Post("/init", questionnaireController.InitQuestionnaire)
	router.Get("/{questionnaire_id}", questionnaireController.FindQuestionnaireByID)
	router.Post("/{questionnaire_id}/reopen", questionnaireController.ReopenQuestionnaire)
	router.Get("/{questionnaire_id}/score", questionnaireController.ScoreQuestionnaire)

	// Patient-facing routes authenticate with the session token issued at
	// init time.
	router.Group(func(r chi.Router) {
		r.Use(middlewares.SessionAuth)
		r.Put("/{questionnaire_id}/answers", questionnaireController.RecordAnswer)
		r.Post("/{questionnaire_id}/complete", questionnaireController.CompleteQuestionnaire)
	})
}
