package middleware

import (
	"net/http"
	"strings"

	"goldloan-backend/internal/domain/actor"

	"github.com/labstack/echo/v4"
)

// ActorContextKey is where the resolved caller identity lives on the echo
// context.
const ActorContextKey = "actor"

// ActorMiddleware resolves the caller from the Ax-Actor-* headers placed by
// the auth gateway. Every API route requires at least an id and a valid
// role; branch may be empty for admins.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Id"))
			role := actor.Role(strings.ToLower(strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Role"))))
			branch := strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Branch"))

			if userID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Ax-Actor-Id header"})
			}
			if role != actor.RoleAdmin && role != actor.RoleStaff {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Ax-Actor-Role must be admin or staff"})
			}
			if role == actor.RoleStaff && branch == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "staff callers must send Ax-Actor-Branch"})
			}

			c.Set(ActorContextKey, actor.Actor{UserID: userID, Role: role, BranchID: branch})
			return next(c)
		}
	}
}

// RequireAdmin guards admin-only routes. It assumes ActorMiddleware already
// ran.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			a, ok := c.Get(ActorContextKey).(actor.Actor)
			if !ok || a.Role != actor.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin role required"})
			}
			return next(c)
		}
	}
}
