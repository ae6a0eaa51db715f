package routes

import (
	"ember_server/controllers"
	"ember_server/services"
	"ember_server/socket"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat-related operations under /chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, socketServer *socket.Server) {
	controller := controllers.NewChatController(chatService, socketServer)

	chatRouter := r.PathPrefix("/chat").Subrouter()
	chatRouter.HandleFunc("/message", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/messages", controller.HandleGetMessages).Methods("GET")
	chatRouter.HandleFunc("/messages/mark-as-read", controller.HandleMarkMessagesAsRead).Methods("POST")
}
