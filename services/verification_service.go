package services

import (
	"context"
	"fmt"
	"log"

	"ember_server/models"
)

// CheckAccess decides whether a user may enter discovery. A pure function of
// the profile state, re-evaluated on every request; a nil profile means the
// caller is not signed in.
func CheckAccess(profile *models.UserProfile) models.AccessDecision {
	switch {
	case profile == nil:
		return models.AccessDecision{Redirect: models.RedirectSignIn}
	case !profile.OnboardingComplete:
		return models.AccessDecision{Redirect: models.RedirectOnboarding}
	case !profile.Verified && !profile.VerificationSkipped:
		return models.AccessDecision{Redirect: models.RedirectVerify}
	default:
		return models.AccessDecision{Allow: true}
	}
}

// VerificationService runs the selfie verification flow and writes the
// outcome back onto the user record.
type VerificationService struct {
	Users *UserService
	Face  *FaceService
}

// VerificationResult is returned to the UI after a verify or skip call.
type VerificationResult struct {
	Verified   bool    `json:"verified"`
	Confidence float64 `json:"confidence"`
	Skipped    bool    `json:"skipped"`
}

// VerifyUser compares the captured selfie against the user's first profile
// photo. The confidence score is persisted and returned whether or not the
// comparison passed, so a failed attempt can be retried.
func (vs *VerificationService) VerifyUser(ctx context.Context, userID, selfieURL string) (*VerificationResult, error) {
	if selfieURL == "" {
		return nil, fmt.Errorf("selfie url is required: %w", ErrInvalidInput)
	}

	profile, err := vs.Users.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(profile.Photos) == 0 {
		return nil, fmt.Errorf("profile has no photo to compare against: %w", ErrInvalidInput)
	}

	comparison, err := vs.Face.CompareFaces(ctx, selfieURL, profile.Photos[0])
	if err != nil {
		return nil, err
	}

	_, err = vs.Users.UpdateUserProfile(ctx, userID, map[string]interface{}{
		"verified":               comparison.Matched,
		"verificationConfidence": comparison.Confidence,
		"verificationSkipped":    false,
		"selfieUrl":              selfieURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store verification outcome: %w", err)
	}

	log.Printf("🪪 Verification for %s: matched=%v confidence=%.1f", userID, comparison.Matched, comparison.Confidence)
	return &VerificationResult{Verified: comparison.Matched, Confidence: comparison.Confidence}, nil
}

// SkipVerification marks the user unverified-but-admitted. They can come
// back and verify later.
func (vs *VerificationService) SkipVerification(ctx context.Context, userID string) (*VerificationResult, error) {
	_, err := vs.Users.UpdateUserProfile(ctx, userID, map[string]interface{}{
		"verified":            false,
		"verificationSkipped": true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record verification skip: %w", err)
	}
	return &VerificationResult{Skipped: true}, nil
}
