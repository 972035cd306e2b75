package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"session-service/app/domain"
	"session-service/app/port"
	"session-service/app/utils/validator"
)

// SessionHandler exposes the session coordinator over HTTP: the session
// snapshot plus the sign-in, sign-up, and sign-out operations
type SessionHandler struct {
	coordinator port.SessionCoordinator
	navigator   port.Navigator
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(coordinator port.SessionCoordinator, navigator port.Navigator, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		coordinator: coordinator,
		navigator:   navigator,
		validator:   validator.New(),
		logger:      logger,
	}
}

// LoginRequest is the sign-in request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the sign-up request body
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,password"`
	DisplayName string `json:"display_name" validate:"omitempty,max=64"`
}

// SessionResponse is the externally visible session snapshot. The provider
// token never leaves the service.
type SessionResponse struct {
	Identity        *domain.Identity `json:"identity,omitempty"`
	Profile         *domain.Profile  `json:"profile,omitempty"`
	ExpiresAt       *time.Time       `json:"expires_at,omitempty"`
	CurrentRoute    string           `json:"current_route"`
	IsAuthenticated bool             `json:"is_authenticated"`
	IsAdmin         bool             `json:"is_admin"`
	IsLoading       bool             `json:"is_loading"`
	IsInitialized   bool             `json:"is_initialized"`
}

// GetSession returns the current session snapshot
// @Summary Current session
// @Description Snapshot of the coordinator state: identity, profile, flags
// @Tags session
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /v1/session [get]
func (h *SessionHandler) GetSession(c echo.Context) error {
	snap := h.coordinator.Snapshot()

	response := SessionResponse{
		Identity:        snap.Identity,
		Profile:         snap.Profile,
		CurrentRoute:    h.navigator.CurrentRoute(),
		IsAuthenticated: snap.IsAuthenticated(),
		IsAdmin:         h.coordinator.IsAdmin(),
		IsLoading:       snap.IsLoading,
		IsInitialized:   snap.IsInitialized,
	}
	if snap.Session != nil && !snap.Session.ExpiresAt.IsZero() {
		expiresAt := snap.Session.ExpiresAt
		response.ExpiresAt = &expiresAt
	}

	return c.JSON(http.StatusOK, response)
}

// Login signs the user in with email and password
// @Summary Sign in
// @Tags session
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/auth/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: err.Error(),
		})
	}

	if err := h.coordinator.SignIn(c.Request().Context(), req.Email, req.Password); err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "signed in"})
}

// Register creates a new account and signs it in
// @Summary Sign up
// @Tags session
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/auth/register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: err.Error(),
		})
	}

	if err := h.coordinator.SignUp(c.Request().Context(), req.Email, req.Password, req.DisplayName); err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Message: "registered"})
}

// Logout signs the current user out. Always succeeds from the caller's point
// of view: local state is cleared even when the provider is unreachable.
// @Summary Sign out
// @Tags session
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /v1/auth/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.coordinator.SignOut(c.Request().Context()); err != nil {
		h.logger.Warn("sign-out reported an error", "error", err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "signed out"})
}
