package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"ember_server/middleware"
	"ember_server/services"
)

// VerificationController handles the selfie verification flow and the
// discovery access gate.
type VerificationController struct {
	VerificationService *services.VerificationService
	UserService         *services.UserService
}

// NewVerificationController creates a new VerificationController instance
func NewVerificationController(verificationService *services.VerificationService, userService *services.UserService) *VerificationController {
	return &VerificationController{VerificationService: verificationService, UserService: userService}
}

// HandleVerify compares the uploaded selfie against the profile photo
func (vc *VerificationController) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SelfieURL string `json:"selfieUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	userID, _ := middleware.UserID(r.Context())

	result, err := vc.VerificationService.VerifyUser(r.Context(), userID, request.SelfieURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleSkip records an explicit verification skip
func (vc *VerificationController) HandleSkip(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	result, err := vc.VerificationService.SkipVerification(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleAccess evaluates the gate for the caller's current state
func (vc *VerificationController) HandleAccess(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	profile, err := vc.UserService.GetUserProfile(r.Context(), userID)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		writeError(w, err)
		return
	}

	// A missing profile gates like a signed-out user.
	writeJSON(w, http.StatusOK, services.CheckAccess(profile))
}
