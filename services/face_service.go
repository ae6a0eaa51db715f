package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultCompareURL = "https://api-us.faceplusplus.com/facepp/v3/compare"

// FaceMatchThreshold is the minimum confidence treated as a face match.
const FaceMatchThreshold = 80

// FaceComparison is the pass/fail outcome plus the raw confidence score,
// which the UI shows on a failed attempt.
type FaceComparison struct {
	Confidence float64 `json:"confidence"`
	Matched    bool    `json:"matched"`
}

// FaceService calls the Face++ compare API with two image URLs.
type FaceService struct {
	APIKey     string
	APISecret  string
	CompareURL string
	HTTPClient *http.Client
}

// NewFaceServiceFromEnv builds the client from FACEPP_API_KEY and
// FACEPP_API_SECRET.
func NewFaceServiceFromEnv() *FaceService {
	return &FaceService{
		APIKey:    os.Getenv("FACEPP_API_KEY"),
		APISecret: os.Getenv("FACEPP_API_SECRET"),
	}
}

// CompareFaces submits both images and maps the confidence score onto a
// boolean via FaceMatchThreshold. Any transport or vendor error surfaces as
// ErrUpstreamUnavailable.
func (fs *FaceService) CompareFaces(ctx context.Context, imageURL1, imageURL2 string) (*FaceComparison, error) {
	if imageURL1 == "" || imageURL2 == "" {
		return nil, fmt.Errorf("both image urls are required: %w", ErrInvalidInput)
	}

	form := url.Values{}
	form.Set("api_key", fs.APIKey)
	form.Set("api_secret", fs.APISecret)
	form.Set("image_url1", imageURL1)
	form.Set("image_url2", imageURL2)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fs.compareURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build face comparison request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := fs.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("face comparison request failed: %v: %w", err, ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	var payload struct {
		Confidence   float64 `json:"confidence"`
		ErrorMessage string  `json:"error_message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode face comparison response: %w", ErrUpstreamUnavailable)
	}
	if payload.ErrorMessage != "" {
		return nil, fmt.Errorf("face comparison rejected: %s: %w", payload.ErrorMessage, ErrUpstreamUnavailable)
	}

	return &FaceComparison{
		Confidence: payload.Confidence,
		Matched:    payload.Confidence >= FaceMatchThreshold,
	}, nil
}

func (fs *FaceService) compareURL() string {
	if fs.CompareURL != "" {
		return fs.CompareURL
	}
	return defaultCompareURL
}

func (fs *FaceService) httpClient() *http.Client {
	if fs.HTTPClient != nil {
		return fs.HTTPClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}
