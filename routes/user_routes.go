// routes/user_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/controllers"
	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
)

// RegisterUserRoutes sets up the minimal /user tree behind its role gate.
func RegisterUserRoutes(e *echo.Echo, dashboard *controllers.DashboardController) {
	user := e.Group("/user")
	user.Use(middleware.RequireRole(models.RoleUser))

	user.GET("", dashboard.User)
}
