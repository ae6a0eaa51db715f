package routes

import (
	"ember_server/controllers"
	"ember_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up match listing and the sweep trigger under
// /matches
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService, sweeperService *services.SweeperService) {
	controller := controllers.NewMatchController(matchService, sweeperService)

	matchRouter := r.PathPrefix("/matches").Subrouter()
	matchRouter.HandleFunc("", controller.HandleGetMatches).Methods("GET")
	matchRouter.HandleFunc("/sweep", controller.HandleSweep).Methods("POST")
	matchRouter.HandleFunc("/{matchId}", controller.HandleGetMatch).Methods("GET")
}
