package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ember_server/middleware"
	"ember_server/services"
	"ember_server/socket"
)

// ChatController handles message sending and retrieval
type ChatController struct {
	ChatService *services.ChatService
	Socket      *socket.Server
}

// NewChatController creates a new ChatController instance
func NewChatController(chatService *services.ChatService, socketServer *socket.Server) *ChatController {
	return &ChatController{ChatService: chatService, Socket: socketServer}
}

// HandleSendMessage stores a message and pushes it to the match's
// subscribers
func (cc *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID string `json:"matchId"`
		Text    string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	senderID, _ := middleware.UserID(r.Context())

	message, err := cc.ChatService.SendMessage(r.Context(), request.MatchID, senderID, request.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	cc.Socket.BroadcastMessage(*message)
	writeJSON(w, http.StatusCreated, message)
}

// HandleGetMessages fetches messages for a match in chronological order
func (cc *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("matchId")
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	requesterID, _ := middleware.UserID(r.Context())

	messages, err := cc.ChatService.GetMessages(r.Context(), matchID, requesterID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// HandleMarkMessagesAsRead marks the messages the caller received as read
func (cc *ChatController) HandleMarkMessagesAsRead(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID string `json:"matchId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	readerID, _ := middleware.UserID(r.Context())

	if err := cc.ChatService.MarkMessagesAsRead(r.Context(), request.MatchID, readerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
