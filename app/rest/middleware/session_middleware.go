package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"session-service/app/port"
)

// RequireSession rejects requests while no identity is signed in. The check
// reads the coordinator snapshot; it never calls the identity provider.
func RequireSession(coordinator port.SessionCoordinator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap := coordinator.Snapshot()
			if !snap.IsAuthenticated() {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "No user logged in",
				})
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects requests from non-admin sessions
func RequireAdmin(coordinator port.SessionCoordinator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap := coordinator.Snapshot()
			if !snap.IsAuthenticated() {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "No user logged in",
				})
			}
			if !coordinator.IsAdmin() {
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "admin access required",
				})
			}
			return next(c)
		}
	}
}
