package controllers

import (
	"fmt"
	"net/http"

	"ember_server/middleware"
	"ember_server/services"

	"github.com/gorilla/mux"
)

// MatchController handles match listing and the sweep trigger
type MatchController struct {
	MatchService   *services.MatchService
	SweeperService *services.SweeperService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService, sweeperService *services.SweeperService) *MatchController {
	return &MatchController{MatchService: matchService, SweeperService: sweeperService}
}

// HandleGetMatches returns the caller's active matches, newest first
func (mc *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	matches, err := mc.MatchService.GetActiveMatches(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

// HandleGetMatch returns one match. Non-participants see a 404, not someone
// else's match.
func (mc *MatchController) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]
	userID, _ := middleware.UserID(r.Context())

	match, err := mc.MatchService.GetMatch(r.Context(), matchID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !match.HasUser(userID) {
		writeError(w, fmt.Errorf("match %s: %w", matchID, services.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, match)
}

// HandleSweep is the idempotent entry point for the external scheduler
func (mc *MatchController) HandleSweep(w http.ResponseWriter, r *http.Request) {
	expired, err := mc.SweeperService.Sweep(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"expired": expired})
}
