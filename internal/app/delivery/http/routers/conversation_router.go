package routers

import (
	"curaflow-service/internal/app/delivery/http/controllers"
	"curaflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachConversationRouter(router chi.Router, middlewares *middlewares.Middlewares, conversationController *controllers.ConversationController) {
	router.Get("/{conversation_id}/messages", conversationController.FindConversationMessages)
}
