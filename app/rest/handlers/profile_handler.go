package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"session-service/app/domain"
	"session-service/app/port"
	"session-service/app/utils/validator"
)

// ProfileHandler exposes profile reads and edits for the signed-in user
type ProfileHandler struct {
	coordinator port.SessionCoordinator
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(coordinator port.SessionCoordinator, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		coordinator: coordinator,
		validator:   validator.New(),
		logger:      logger,
	}
}

// UpdateProfileRequest is the profile patch body. All fields are optional but
// at least one must be present.
type UpdateProfileRequest struct {
	DisplayName          *string                `json:"display_name" validate:"omitempty,min=1,max=64"`
	Locale               *string                `json:"locale" validate:"omitempty,min=2,max=16"`
	Timezone             *string                `json:"timezone" validate:"omitempty,min=1,max=64"`
	RiskPercent          *float64               `json:"risk_percent" validate:"omitempty,risk_percent"`
	NotificationSettings map[string]interface{} `json:"notification_settings"`
}

// GetProfile returns the hydrated profile from the current snapshot
// @Summary Current profile
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	snap := h.coordinator.Snapshot()
	if !snap.IsAuthenticated() {
		return writeDomainError(c, domain.ErrNoUserLoggedIn)
	}
	if snap.Profile == nil {
		// Hydration has not landed yet or failed; the client retries
		return writeDomainError(c, domain.ErrProfileNotFound)
	}

	return c.JSON(http.StatusOK, snap.Profile)
}

// UpdateProfile applies a partial edit to the signed-in user's profile
// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Param body body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/profile [patch]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: err.Error(),
		})
	}

	update := domain.ProfileUpdate{
		DisplayName:          req.DisplayName,
		Locale:               req.Locale,
		Timezone:             req.Timezone,
		RiskPercent:          req.RiskPercent,
		NotificationSettings: req.NotificationSettings,
	}

	if err := h.coordinator.UpdateProfile(c.Request().Context(), update); err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "profile updated"})
}
