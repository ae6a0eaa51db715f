package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ember_server/middleware"
	"ember_server/models"
	"ember_server/services"
)

// UserController handles profile and discovery requests
type UserController struct {
	UserService *services.UserService
}

// NewUserController creates a new UserController instance
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{UserService: userService}
}

// HandleCreateProfile bootstraps the profile on first sign-in. The id comes
// from the token, never the body.
func (uc *UserController) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	userID, _ := middleware.UserID(r.Context())
	profile.UserID = userID

	created, err := uc.UserService.CreateUserProfile(r.Context(), profile)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// HandleGetMe returns the caller's own profile
func (uc *UserController) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	profile, err := uc.UserService.GetUserProfile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleUpdateMe applies a partial profile update (onboarding writes land here)
func (uc *UserController) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	userID, _ := middleware.UserID(r.Context())

	profile, err := uc.UserService.UpdateUserProfile(r.Context(), userID, updates)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleDiscover returns swipe candidates. The verification gate runs first;
// a blocked caller gets the redirect target instead of profiles.
func (uc *UserController) HandleDiscover(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	profile, err := uc.UserService.GetUserProfile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	if decision := services.CheckAccess(profile); !decision.Allow {
		writeJSON(w, http.StatusForbidden, decision)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	profiles, err := uc.UserService.GetDiscoverProfiles(r.Context(), userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}
