package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"session-service/app/domain"
)

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is the uniform success envelope for mutations that return
// no resource body
type SuccessResponse struct {
	Message string `json:"message"`
}

// writeDomainError maps a domain error onto the HTTP surface. The error
// message is passed through verbatim: the domain owns its sentinel wording.
func writeDomainError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrNoUserLoggedIn),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrSessionNotFound):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrProfileNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrIdentityExists),
		errors.Is(err, domain.ErrProfileConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrEmptyUpdate),
		errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrProviderUnavailable):
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, ErrorResponse{Error: err.Error()})
}
