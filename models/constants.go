package models

// Swipe actions
const (
	SwipeActionLike = "like"
	SwipeActionPass = "pass"
)

// Redirect targets returned by the verification gate
const (
	RedirectSignIn     = "signin"
	RedirectOnboarding = "onboarding"
	RedirectVerify     = "verify"
)

// Message bounds
const (
	MaxMessageLength     = 500
	MessagePreviewLength = 100
)
