package routers

import (
	"healthtrack-service/internal/app/delivery/http/controllers"
	"healthtrack-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachChatRoutes(router chi.Router, middlewares *middlewares.Middlewares, chatController *controllers.ChatController) {
	router.With(middlewares.BodyLimit).Post("/messages", chatController.SendMessage)
	router.Get("/conversations", chatController.FindConversation)
}
