package controllers

import (
	"encoding/json"
	"net/http"

	"ember_server/middleware"
	"ember_server/services"
)

// SwipeController handles swipe submissions
type SwipeController struct {
	MatchService *services.MatchService
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(matchService *services.MatchService) *SwipeController {
	return &SwipeController{MatchService: matchService}
}

// HandleSwipe records a like/pass and reports whether it completed a match
func (sc *SwipeController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ToUserID string `json:"toUserId"`
		Action   string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	fromUserID, _ := middleware.UserID(r.Context())

	result, err := sc.MatchService.OnSwipe(r.Context(), fromUserID, request.ToUserID, request.Action)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
