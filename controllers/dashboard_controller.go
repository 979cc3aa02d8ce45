// controllers/dashboard_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/stats"
	"github.com/vinshop/admin_console/store"
)

// DashboardController serves the per-role landing pages with their summary
// cards and chart datasets. Aggregates are recomputed from the mirrored lists
// on every render.
type DashboardController struct {
	stores *store.Manager
}

func NewDashboardController(stores *store.Manager) *DashboardController {
	return &DashboardController{stores: stores}
}

// Admin renders the admin dashboard.
func (dc *DashboardController) Admin(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	stores := dc.stores.For(session.UserID)
	ctx := c.Request().Context()

	// Load the working set; each fetch failure degrades its own card only.
	if err := stores.Users.List(ctx, session.Token, models.PageRequest{Page: 0, Size: 1000}); err != nil {
		c.Logger().Warnf("dashboard user load failed: %v", err)
	}
	if err := stores.Orders.List(ctx, session.Token, models.PageRequest{Page: 0, Size: 1000}); err != nil {
		c.Logger().Warnf("dashboard order load failed: %v", err)
	}
	if err := stores.Collaborators.List(ctx, session.Token, models.PageRequest{Page: 0, Size: 1000}); err != nil {
		c.Logger().Warnf("dashboard collaborator load failed: %v", err)
	}

	users := stores.Users.State().Items
	orders := stores.Orders.State().Items
	collaborators := stores.Collaborators.State().Items

	completed := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.StatusName == models.OrderComplete {
			completed = append(completed, o)
		}
	}

	// Quantity sold per product across the loaded orders, for the top-5 card.
	type productQty struct {
		Name string
		Qty  int
	}
	qtyByProduct := map[string]int{}
	var productOrder []string
	for _, o := range orders {
		for _, item := range o.Items {
			if _, seen := qtyByProduct[item.Product.ProductName]; !seen {
				productOrder = append(productOrder, item.Product.ProductName)
			}
			qtyByProduct[item.Product.ProductName] += item.Quantity
		}
	}
	rankedProducts := make([]productQty, 0, len(productOrder))
	for _, name := range productOrder {
		rankedProducts = append(rankedProducts, productQty{Name: name, Qty: qtyByProduct[name]})
	}

	monthly := stats.GroupSum(completed,
		func(o models.Order) string { return o.OrderDate.Format("2006-01") },
		func(o models.Order) float64 { return o.TotalAmount })

	data := newPageData(c)
	data["TotalUsers"] = len(users)
	data["TotalCollaborators"] = len(collaborators)
	data["TotalOrders"] = len(orders)
	data["TotalRevenue"] = stats.SumBy(completed, func(o models.Order) float64 { return o.TotalAmount })
	data["OrdersByStatus"] = stats.GroupCount(orders, func(o models.Order) string { return o.StatusName })
	data["StatusKeys"] = stats.SortedKeys(stats.GroupCount(orders, func(o models.Order) string { return o.StatusName }))
	data["MonthlyRevenue"] = monthly
	data["MonthKeys"] = stats.SortedKeys(monthly)
	data["TopSpenders"] = stats.TopN(users, 5, func(u models.User) float64 { return u.TotalSpent })
	data["TopProducts"] = stats.TopN(rankedProducts, 5, func(p productQty) float64 { return float64(p.Qty) })
	data["TopCollaborators"] = stats.TopN(collaborators, 5, func(c models.Collaborator) float64 { return c.TotalCommissionEarned })
	return c.Render(http.StatusOK, "dashboard_admin", data)
}

// Collaborator renders the collaborator dashboard.
func (dc *DashboardController) Collaborator(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	stores := dc.stores.For(session.UserID)
	ctx := c.Request().Context()

	if err := stores.Surveys.ListMine(ctx, session.Token, models.PageRequest{Page: 0, Size: 1000}); err != nil {
		c.Logger().Warnf("dashboard survey load failed: %v", err)
	}
	if err := stores.Orders.List(ctx, session.Token, models.PageRequest{Page: 0, Size: 1000}); err != nil {
		c.Logger().Warnf("dashboard order load failed: %v", err)
	}
	if err := stores.Revenue.Mine(ctx, session.Token); err != nil {
		c.Logger().Warnf("dashboard revenue load failed: %v", err)
	}

	surveys := stores.Surveys.State().Items
	orders := stores.Orders.State().Items
	revenue := stores.Revenue.State().Items

	data := newPageData(c)
	data["TotalOrders"] = len(orders)
	data["OpenOrders"] = stats.Count(orders, func(o models.Order) bool { return o.StatusName == models.OrderOpen })
	data["InProgressOrders"] = stats.Count(orders, func(o models.Order) bool { return o.StatusName == models.OrderInProgress })
	data["PendingSurveys"] = stats.Count(surveys, func(s models.Survey) bool { return s.Status == models.SurveyInProgress })
	data["CompletedSurveys"] = stats.Count(surveys, func(s models.Survey) bool { return s.Status == models.SurveyComplete })
	if len(revenue) == 1 {
		data["Revenue"] = revenue[0]
	}
	return c.Render(http.StatusOK, "dashboard_collaborator", data)
}

// User renders the minimal end-user dashboard.
func (dc *DashboardController) User(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	stores := dc.stores.For(session.UserID)

	if err := stores.Orders.List(c.Request().Context(), session.Token, pageRequest(c)); err != nil {
		c.Logger().Warnf("user order load failed: %v", err)
	}
	state := stores.Orders.State()

	data := newPageData(c)
	data["Orders"] = state.Items
	data["TotalSpent"] = stats.SumBy(state.Items, func(o models.Order) float64 { return o.TotalAmount })
	data["Meta"] = listMeta(state)
	if state.LastError != nil {
		data["Error"] = state.LastError.Message
	}
	return c.Render(http.StatusOK, "dashboard_user", data)
}
