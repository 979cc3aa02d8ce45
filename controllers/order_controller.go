// controllers/order_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/store"
)

// OrderController serves the order pages for both admins and collaborators.
// Action handlers refuse transitions the current status does not allow before
// ever calling the backend; the backend still re-checks.
type OrderController struct {
	stores *store.Manager
}

func NewOrderController(stores *store.Manager) *OrderController {
	return &OrderController{stores: stores}
}

// List renders the order history table. Status and q filters narrow only the
// loaded page.
func (oc *OrderController) List(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	orders := oc.stores.For(session.UserID).Orders

	if err := orders.List(c.Request().Context(), session.Token, pageRequest(c)); err != nil {
		c.Logger().Errorf("order list failed: %v", err)
	}
	state := orders.State()

	items := state.Items
	if status := c.QueryParam("status"); status != "" {
		filtered := make([]models.Order, 0, len(items))
		for _, o := range items {
			if o.StatusName == status {
				filtered = append(filtered, o)
			}
		}
		items = filtered
	}
	if q := c.QueryParam("q"); q != "" {
		filtered := make([]models.Order, 0, len(items))
		for _, o := range items {
			if containsFold(o.BuyerName(), q) || containsFold(o.ID, q) || containsFold(o.ReferralCodeUsed, q) {
				filtered = append(filtered, o)
			}
		}
		items = filtered
	}

	data := newPageData(c)
	data["Orders"] = items
	data["Query"] = c.QueryParam("q")
	data["Status"] = c.QueryParam("status")
	data["Statuses"] = []string{models.OrderOpen, models.OrderInProgress, models.OrderComplete, models.OrderCancel}
	data["Base"] = oc.basePath(session)
	data["Meta"] = listMeta(state)
	if state.LastError != nil {
		data["Error"] = state.LastError.Message
	}
	return c.Render(http.StatusOK, "orders_list", data)
}

// Detail renders one order with its action buttons enabled per status.
func (oc *OrderController) Detail(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	order, err := oc.stores.For(session.UserID).Orders.Get(c.Request().Context(), session.Token, c.Param("id"))
	if err != nil {
		return redirectWithError(c, oc.basePath(session), err)
	}

	data := newPageData(c)
	data["Order"] = order
	data["Base"] = oc.basePath(session)
	return c.Render(http.StatusOK, "order_detail", data)
}

// Process takes an Open order into In Progress.
func (oc *OrderController) Process(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	id := c.Param("id")
	base := oc.basePath(session)

	if order := oc.findLoaded(session, id); order != nil && !order.CanProcess() {
		return redirectWithError(c, base+"/orders/"+id, &models.APIError{
			Code: 0, Message: "Đơn hàng không ở trạng thái Open",
		})
	}

	if _, err := oc.stores.For(session.UserID).Orders.Process(c.Request().Context(), session.Token, id); err != nil {
		return redirectWithError(c, base+"/orders/"+id, err)
	}
	return redirectWithToast(c, base+"/orders/"+id, "Đã nhận xử lý đơn hàng")
}

// Complete finishes an In Progress order.
func (oc *OrderController) Complete(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	id := c.Param("id")
	base := oc.basePath(session)

	if order := oc.findLoaded(session, id); order != nil && !order.CanComplete() {
		return redirectWithError(c, base+"/orders/"+id, &models.APIError{
			Code: 0, Message: "Đơn hàng không ở trạng thái In Progress",
		})
	}

	if _, err := oc.stores.For(session.UserID).Orders.Complete(c.Request().Context(), session.Token, id); err != nil {
		return redirectWithError(c, base+"/orders/"+id, err)
	}
	return redirectWithToast(c, base+"/orders/"+id, "Đã hoàn tất đơn hàng")
}

// Cancel moves a non-terminal order to Cancel.
func (oc *OrderController) Cancel(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	id := c.Param("id")
	base := oc.basePath(session)

	if order := oc.findLoaded(session, id); order != nil && !order.CanCancel() {
		return redirectWithError(c, base+"/orders/"+id, &models.APIError{
			Code: 0, Message: "Đơn hàng đã ở trạng thái cuối",
		})
	}

	if _, err := oc.stores.For(session.UserID).Orders.Cancel(c.Request().Context(), session.Token, id); err != nil {
		return redirectWithError(c, base+"/orders/"+id, err)
	}
	return redirectWithToast(c, base+"/orders/"+id, "Đã hủy đơn hàng")
}

// findLoaded looks the order up in the mirrored page, nil when not loaded.
// A miss just skips the local guard; the backend decides anyway.
func (oc *OrderController) findLoaded(session *middleware.Session, id string) *models.Order {
	for _, o := range oc.stores.For(session.UserID).Orders.State().Items {
		if o.ID == id {
			return &o
		}
	}
	return nil
}

func (oc *OrderController) basePath(session *middleware.Session) string {
	if session.Role == models.RoleCollaborator {
		return "/collaborator"
	}
	return "/admin"
}
