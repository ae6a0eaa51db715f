package routes

import (
	"ember_server/controllers"
	"ember_server/services"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes sets up the swipe endpoint under /swipes
func RegisterSwipeRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewSwipeController(matchService)

	r.HandleFunc("/swipes", controller.HandleSwipe).Methods("POST")
}
