package routers

import (
	"curaflow-service/internal/app/delivery/http/controllers"
	"curaflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTemplateRouter(router chi.Router, middlewares *middlewares.Middlewares, templateController *controllers.TemplateController) {
	router.Post("/", templateController.CreateTemplate)
	router.Get("/", templateController.FindAllTemplates)
	router.Get("/{template_id}", templateController.FindTemplateByID)
}
