package domain

import "errors"

// Session coordination errors
var (
	// Identity provider errors
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionExpired      = errors.New("session expired")
	ErrIdentityExists      = errors.New("identity already exists")
	ErrProviderUnavailable = errors.New("identity provider unavailable")

	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileConflict = errors.New("profile already exists")

	// Operation validation errors. The message below is surfaced verbatim to
	// callers of update-profile, so it stays in user-facing casing.
	ErrNoUserLoggedIn = errors.New("No user logged in")
	ErrEmptyUpdate    = errors.New("no profile fields to update")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)
