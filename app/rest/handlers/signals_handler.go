package handlers

import (
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"

	"session-service/app/domain"
	"session-service/app/port"
)

//go:embed signals.yaml
var signalCatalogYAML []byte

type signalCatalog struct {
	Signals []domain.Signal `yaml:"signals"`
}

// SignalsHandler serves the static signal catalog filtered by the caller's
// subscription tier
type SignalsHandler struct {
	coordinator port.SessionCoordinator
	signals     []domain.Signal
	logger      *slog.Logger
}

// SignalsResponse wraps the visible slice of the catalog
type SignalsResponse struct {
	Signals []domain.Signal `json:"signals"`
	Total   int             `json:"total"`
}

// NewSignalsHandler parses the embedded catalog. A malformed catalog is a
// build defect, not a runtime condition, so it fails loudly.
func NewSignalsHandler(coordinator port.SessionCoordinator, logger *slog.Logger) (*SignalsHandler, error) {
	var catalog signalCatalog
	if err := yaml.Unmarshal(signalCatalogYAML, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse signal catalog: %w", err)
	}

	logger.Info("signal catalog loaded", "count", len(catalog.Signals))

	return &SignalsHandler{
		coordinator: coordinator,
		signals:     catalog.Signals,
		logger:      logger,
	}, nil
}

// ListSignals returns the signals the current subscription tier may see.
// Anonymous callers and callers whose profile has not hydrated yet get the
// free tier.
// @Summary List signals
// @Tags signals
// @Produce json
// @Success 200 {object} SignalsResponse
// @Router /v1/signals [get]
func (h *SignalsHandler) ListSignals(c echo.Context) error {
	snap := h.coordinator.Snapshot()

	visible := make([]domain.Signal, 0, len(h.signals))
	for _, signal := range h.signals {
		if signal.VisibleTo(snap.Profile) {
			visible = append(visible, signal)
		}
	}

	return c.JSON(http.StatusOK, SignalsResponse{
		Signals: visible,
		Total:   len(visible),
	})
}

// GetSignal returns a single signal by id, subject to the same tier gating as
// the list
// @Summary Get signal
// @Tags signals
// @Produce json
// @Param id path string true "Signal ID"
// @Success 200 {object} domain.Signal
// @Failure 404 {object} ErrorResponse
// @Router /v1/signals/{id} [get]
func (h *SignalsHandler) GetSignal(c echo.Context) error {
	id := c.Param("id")
	snap := h.coordinator.Snapshot()

	for _, signal := range h.signals {
		if signal.ID != id {
			continue
		}
		if !signal.VisibleTo(snap.Profile) {
			// Hidden and missing are indistinguishable to the caller
			break
		}
		return c.JSON(http.StatusOK, signal)
	}

	return c.JSON(http.StatusNotFound, ErrorResponse{Error: "signal not found"})
}

// ListAllSignals returns the unfiltered catalog. Routed behind the admin
// middleware.
// @Summary List all signals
// @Tags signals
// @Produce json
// @Success 200 {object} SignalsResponse
// @Failure 403 {object} ErrorResponse
// @Router /v1/admin/signals [get]
func (h *SignalsHandler) ListAllSignals(c echo.Context) error {
	return c.JSON(http.StatusOK, SignalsResponse{
		Signals: h.signals,
		Total:   len(h.signals),
	})
}
