package routes

import (
	"ember_server/controllers"
	"ember_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up routes for profile and discovery operations
// under /users
func RegisterUserRoutes(r *mux.Router, userService *services.UserService) {
	controller := controllers.NewUserController(userService)

	userRouter := r.PathPrefix("/users").Subrouter()
	userRouter.HandleFunc("", controller.HandleCreateProfile).Methods("POST")
	userRouter.HandleFunc("/me", controller.HandleGetMe).Methods("GET")
	userRouter.HandleFunc("/me", controller.HandleUpdateMe).Methods("PATCH")
	userRouter.HandleFunc("/discover", controller.HandleDiscover).Methods("GET")
}
