package rest

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"session-service/app/port"
	"session-service/app/rest/handlers"
	custommw "session-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger      *slog.Logger
	Coordinator port.SessionCoordinator
	Navigator   port.Navigator

	// Readiness probes keyed by dependency name
	HealthChecks map[string]handlers.DependencyCheck

	EnableDebug bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) (*echo.Echo, error) {
	// Create Echo instance
	e := echo.New()

	// Configure Echo
	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	sessionHandler := handlers.NewSessionHandler(config.Coordinator, config.Navigator, config.Logger)
	profileHandler := handlers.NewProfileHandler(config.Coordinator, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Logger, config.HealthChecks)
	signalsHandler, err := handlers.NewSignalsHandler(config.Coordinator, config.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create signals handler: %w", err)
	}

	// Create security components
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Session and auth endpoints
	v1.GET("/session", sessionHandler.GetSession)

	auth := v1.Group("/auth")
	auth.POST("/login", sessionHandler.Login)
	auth.POST("/register", sessionHandler.Register)
	auth.POST("/logout", sessionHandler.Logout)

	// Signal catalog; tier gating happens inside the handler so anonymous
	// callers still see the free tier
	v1.GET("/signals", signalsHandler.ListSignals)
	v1.GET("/signals/:id", signalsHandler.GetSignal)

	// Profile endpoints require a signed-in session
	profile := v1.Group("/profile")
	profile.Use(custommw.RequireSession(config.Coordinator))
	profile.GET("", profileHandler.GetProfile)
	profile.PATCH("", profileHandler.UpdateProfile)

	// Admin endpoints
	admin := v1.Group("/admin")
	admin.Use(custommw.RequireAdmin(config.Coordinator))
	admin.GET("/signals", signalsHandler.ListAllSignals)

	return e, nil
}
