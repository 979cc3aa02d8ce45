// routes/admin_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/controllers"
	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
)

// AdminControllers bundles everything the /admin tree needs.
type AdminControllers struct {
	Dashboard     *controllers.DashboardController
	Users         *controllers.UserController
	Products      *controllers.ProductController
	Categories    *controllers.CategoryController
	Collaborators *controllers.CollaboratorController
	Orders        *controllers.OrderController
	Surveys       *controllers.SurveyController
	Revenue       *controllers.RevenueController
	Exports       *controllers.ExportController
}

// RegisterAdminRoutes sets up the /admin tree behind the admin role gate.
func RegisterAdminRoutes(e *echo.Echo, ac AdminControllers) {
	admin := e.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))

	admin.GET("", ac.Dashboard.Admin)

	admin.GET("/users", ac.Users.List)
	admin.GET("/users/new", ac.Users.NewPage)
	admin.POST("/users", ac.Users.Create)
	admin.GET("/users/:id/edit", ac.Users.EditPage)
	admin.POST("/users/:id", ac.Users.Update)
	admin.POST("/users/:id/delete", ac.Users.Delete)
	admin.POST("/users/delete", ac.Users.DeleteMany)

	admin.GET("/products", ac.Products.List)
	admin.GET("/products/new", ac.Products.NewPage)
	admin.POST("/products", ac.Products.Create)
	admin.GET("/products/:id/edit", ac.Products.EditPage)
	admin.POST("/products/:id", ac.Products.Update)
	admin.POST("/products/:id/delete", ac.Products.Delete)
	admin.POST("/products/delete", ac.Products.DeleteMany)

	admin.GET("/categories", ac.Categories.List)
	admin.GET("/categories/new", ac.Categories.NewPage)
	admin.POST("/categories", ac.Categories.Create)
	admin.GET("/categories/:id/edit", ac.Categories.EditPage)
	admin.POST("/categories/:id", ac.Categories.Update)
	admin.POST("/categories/:id/delete", ac.Categories.Delete)

	admin.GET("/collaborators", ac.Collaborators.List)
	admin.GET("/collaborators/new", ac.Collaborators.NewPage)
	admin.POST("/collaborators", ac.Collaborators.Create)
	admin.GET("/collaborators/:id/edit", ac.Collaborators.EditPage)
	admin.POST("/collaborators/:id", ac.Collaborators.Update)
	admin.POST("/collaborators/:id/delete", ac.Collaborators.Delete)

	admin.GET("/orders", ac.Orders.List)
	admin.GET("/orders/:id", ac.Orders.Detail)
	admin.POST("/orders/:id/cancel", ac.Orders.Cancel)

	admin.GET("/surveys", ac.Surveys.AdminList)
	admin.GET("/surveys/:id", ac.Surveys.Detail)

	admin.GET("/revenue", ac.Revenue.AdminOverview)

	admin.GET("/export/users", ac.Exports.Users)
	admin.GET("/export/collaborators", ac.Exports.Collaborators)
	admin.GET("/export/products", ac.Exports.Products)
	admin.GET("/export/orders", ac.Exports.Orders)
	admin.GET("/export/surveys", ac.Exports.Surveys)
	admin.GET("/export/revenue", ac.Exports.Revenue)
}
