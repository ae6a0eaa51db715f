package routes

import (
	"ember_server/controllers"
	"ember_server/services"

	"github.com/gorilla/mux"
)

// RegisterVerificationRoutes sets up the verification flow under
// /verification
func RegisterVerificationRoutes(r *mux.Router, verificationService *services.VerificationService, userService *services.UserService) {
	controller := controllers.NewVerificationController(verificationService, userService)

	verificationRouter := r.PathPrefix("/verification").Subrouter()
	verificationRouter.HandleFunc("/verify", controller.HandleVerify).Methods("POST")
	verificationRouter.HandleFunc("/skip", controller.HandleSkip).Methods("POST")
	verificationRouter.HandleFunc("/access", controller.HandleAccess).Methods("GET")
}
