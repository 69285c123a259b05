package routes

import (
	"ttm_server/controllers"
	"ttm_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat history under /api/chat
func RegisterChatRoutes(r *mux.Router, chatHistoryService *services.ChatHistoryService) {
	controller := controllers.NewChatController(chatHistoryService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()

	chatRouter.HandleFunc("/messages", controller.GetRoomMessages).Methods("GET")
}
