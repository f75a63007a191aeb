package services

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// statuses at the boundary; anything else is an internal failure.
var (
	ErrCoachNotFound        = errors.New("coach not found")
	ErrPackageNotFound      = errors.New("package not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidState         = errors.New("invalid state")
	ErrConflict             = errors.New("conflict")
	ErrAllotmentExhausted   = errors.New("session allotment exhausted")
)
