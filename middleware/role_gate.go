// middleware/role_gate.go
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole gates a page tree behind a role. A request without a session, or
// with a different role, is redirected to the login page. This is advisory
// access control for navigation only; the backend authorizes every API call
// again.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := ReadSession(c)
			if session == nil {
				return c.Redirect(http.StatusFound, "/auth/login")
			}
			if session.Role != role {
				c.Logger().Warnf("role gate: %s blocked from %s", session.Role, c.Request().URL.Path)
				return c.Redirect(http.StatusFound, "/auth/login")
			}
			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}
