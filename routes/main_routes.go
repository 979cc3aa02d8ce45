// routes/main_routes.go
package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/middleware"
)

// RegisterMainRoutes sets up the liveness endpoints and the root redirect.
func RegisterMainRoutes(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		if session := middleware.ReadSession(c); session != nil {
			switch session.Role {
			case "ROLE_Admin":
				return c.Redirect(http.StatusFound, "/admin")
			case "ROLE_Collaborator":
				return c.Redirect(http.StatusFound, "/collaborator")
			default:
				return c.Redirect(http.StatusFound, "/user")
			}
		}
		return c.Redirect(http.StatusFound, "/auth/login")
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "Vinshop console is running",
			"version": "1.0",
		})
	})
}
