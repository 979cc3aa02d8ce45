// controllers/revenue_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/stats"
	"github.com/vinshop/admin_console/store"
)

// RevenueController serves the revenue pages: the admin overview across all
// collaborators and a collaborator's own numbers.
type RevenueController struct {
	stores *store.Manager
}

func NewRevenueController(stores *store.Manager) *RevenueController {
	return &RevenueController{stores: stores}
}

// AdminOverview loads every collaborator, fans out the per-collaborator
// revenue fetches and renders the merged table with totals.
func (rc *RevenueController) AdminOverview(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	stores := rc.stores.For(session.UserID)

	if err := stores.Collaborators.List(c.Request().Context(), session.Token, models.PageRequest{Page: 0, Size: 1000}); err != nil {
		data := newPageData(c)
		data["Error"] = errorText(err)
		return c.Render(http.StatusOK, "revenue_list", data)
	}

	collaborators := stores.Collaborators.State().Items
	if err := stores.Revenue.Refresh(c.Request().Context(), session.Token, collaborators); err != nil {
		c.Logger().Warnf("revenue refresh partial failure: %v", err)
	}
	state := stores.Revenue.State()

	data := newPageData(c)
	data["Details"] = state.Items
	data["TotalRevenue"] = stats.SumBy(state.Items, func(d models.RevenueDetail) float64 { return d.TotalRevenue })
	data["TotalCommission"] = stats.SumBy(state.Items, func(d models.RevenueDetail) float64 { return d.TotalCommission })
	data["TopEarners"] = stats.TopN(state.Items, 5, func(d models.RevenueDetail) float64 { return d.TotalRevenue })
	if state.LastError != nil {
		data["Error"] = state.LastError.Message
	}
	return c.Render(http.StatusOK, "revenue_list", data)
}

// Mine renders the calling collaborator's own aggregate.
func (rc *RevenueController) Mine(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	revenue := rc.stores.For(session.UserID).Revenue

	if err := revenue.Mine(c.Request().Context(), session.Token); err != nil {
		data := newPageData(c)
		data["Error"] = errorText(err)
		return c.Render(http.StatusOK, "revenue_list", data)
	}
	state := revenue.State()

	data := newPageData(c)
	data["Details"] = state.Items
	if len(state.Items) == 1 {
		data["TotalRevenue"] = state.Items[0].TotalRevenue
		data["TotalCommission"] = state.Items[0].TotalCommission
	}
	return c.Render(http.StatusOK, "revenue_list", data)
}
