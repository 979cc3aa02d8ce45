// routes/auth_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/controllers"
)

// RegisterAuthRoutes sets up the public /auth pages.
func RegisterAuthRoutes(e *echo.Echo, auth *controllers.AuthController) {
	group := e.Group("/auth")

	group.GET("/login", auth.LoginPage)
	group.POST("/login", auth.Login)
	group.GET("/register", auth.RegisterPage)
	group.POST("/register", auth.Register)
	group.GET("/forgot-password", auth.ForgotPasswordPage)
	group.POST("/forgot-password", auth.ForgotPassword)
	group.POST("/logout", auth.Logout)
}
