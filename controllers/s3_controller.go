package controllers

import (
	"encoding/json"
	"net/http"

	"ember_server/services"
)

// S3Controller hands out presigned URLs for photo and selfie uploads
type S3Controller struct {
	S3Service *services.S3Service
}

// NewS3Controller creates a new S3Controller instance
func NewS3Controller(s3Service *services.S3Service) *S3Controller {
	return &S3Controller{S3Service: s3Service}
}

// HandleUploadURL returns a presigned PUT URL and the resulting object key
func (sc *S3Controller) HandleUploadURL(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
		Kind     string `json:"kind"` // "selfie" or "photo"
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.FileName == "" || request.FileType == "" {
		http.Error(w, `{"error": "fileName and fileType are required"}`, http.StatusBadRequest)
		return
	}

	prefix := "profile-pics"
	if request.Kind == "selfie" {
		prefix = "selfies"
	}

	uploadURL, key, err := sc.S3Service.GenerateUploadURL(r.Context(), prefix, request.FileName, request.FileType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"uploadUrl": uploadURL, "key": key})
}

// HandleReadURL returns a presigned GET URL for an object key
func (sc *S3Controller) HandleReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, `{"error": "key is required"}`, http.StatusBadRequest)
		return
	}

	readURL, err := sc.S3Service.GenerateReadURL(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"readUrl": readURL})
}
