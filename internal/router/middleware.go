package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aftab6363/Spare-Parts-Depot/internal/auth"
)

// AttachIdentity resolves the JWT parsed by the echo-jwt middleware
// into an auth.Identity on the request context. Runs after echo-jwt.
func AttachIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ident, ok := auth.IdentityFromToken(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		auth.SetIdentity(c, ident)
		return next(c)
	}
}

// RequireAdmin rejects callers without the admin role.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ident, ok := auth.CurrentIdentity(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		if !ident.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "not authorized as admin")
		}
		return next(c)
	}
}
