// routes/collaborator_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/controllers"
	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
)

// CollaboratorControllers bundles everything the /collaborator tree needs.
type CollaboratorControllers struct {
	Dashboard *controllers.DashboardController
	Orders    *controllers.OrderController
	Surveys   *controllers.SurveyController
	Revenue   *controllers.RevenueController
}

// RegisterCollaboratorRoutes sets up the /collaborator tree behind its role
// gate.
func RegisterCollaboratorRoutes(e *echo.Echo, cc CollaboratorControllers) {
	collab := e.Group("/collaborator")
	collab.Use(middleware.RequireRole(models.RoleCollaborator))

	collab.GET("", cc.Dashboard.Collaborator)

	collab.GET("/orders", cc.Orders.List)
	collab.GET("/orders/:id", cc.Orders.Detail)
	collab.POST("/orders/:id/process", cc.Orders.Process)
	collab.POST("/orders/:id/complete", cc.Orders.Complete)
	collab.POST("/orders/:id/cancel", cc.Orders.Cancel)

	collab.GET("/surveys", cc.Surveys.OpenList)
	collab.GET("/surveys/mine", cc.Surveys.MineList)
	collab.GET("/surveys/:id", cc.Surveys.Detail)
	collab.POST("/surveys/:id/take", cc.Surveys.Take)
	collab.POST("/surveys/:id/response", cc.Surveys.Respond)

	collab.GET("/revenue", cc.Revenue.Mine)
}
