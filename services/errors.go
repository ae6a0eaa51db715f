package services

import "errors"

// Error kinds surfaced by the service layer. Callers match them with
// errors.Is; controllers map them onto HTTP statuses.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrExpired             = errors.New("match expired")
	ErrConflict            = errors.New("already exists")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
