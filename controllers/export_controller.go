// controllers/export_controller.go
package controllers

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"github.com/vinshop/admin_console/exports"
	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/store"
)

// ExportController serializes the currently loaded (and q-filtered) lists into
// xlsx downloads. The rows always match what the corresponding list page is
// showing: same mirrored page, same filter.
type ExportController struct {
	stores *store.Manager
}

func NewExportController(stores *store.Manager) *ExportController {
	return &ExportController{stores: stores}
}

// Users downloads the user export.
func (ec *ExportController) Users(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	users := ec.stores.For(session.UserID).Users

	if len(users.State().Items) == 0 {
		if err := users.List(c.Request().Context(), session.Token, pageRequest(c)); err != nil {
			return redirectWithError(c, "/admin/users", err)
		}
	}

	items := users.State().Items
	if q := c.QueryParam("q"); q != "" {
		filtered := make([]models.User, 0, len(items))
		for _, u := range items {
			if containsFold(u.Username, q) || containsFold(u.Email, q) || containsFold(u.FullName(), q) {
				filtered = append(filtered, u)
			}
		}
		items = filtered
	}

	f, err := exports.Users(items)
	if err != nil {
		return redirectWithError(c, "/admin/users", &models.APIError{Code: 0, Message: "Xuất file thất bại: " + err.Error()})
	}
	return writeWorkbook(c, f, exports.FileUsers)
}

// Collaborators downloads the collaborator export.
func (ec *ExportController) Collaborators(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	collaborators := ec.stores.For(session.UserID).Collaborators

	if len(collaborators.State().Items) == 0 {
		if err := collaborators.List(c.Request().Context(), session.Token, pageRequest(c)); err != nil {
			return redirectWithError(c, "/admin/collaborators", err)
		}
	}

	items := collaborators.State().Items
	if q := c.QueryParam("q"); q != "" {
		filtered := make([]models.Collaborator, 0, len(items))
		for _, collab := range items {
			if containsFold(collab.User.Username, q) || containsFold(collab.ReferralCode, q) {
				filtered = append(filtered, collab)
			}
		}
		items = filtered
	}

	f, err := exports.Collaborators(items)
	if err != nil {
		return redirectWithError(c, "/admin/collaborators", &models.APIError{Code: 0, Message: "Xuất file thất bại: " + err.Error()})
	}
	return writeWorkbook(c, f, exports.FileCollaborators)
}

// Products downloads the product export.
func (ec *ExportController) Products(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	products := ec.stores.For(session.UserID).Products

	if len(products.State().Items) == 0 {
		if err := products.List(c.Request().Context(), session.Token, pageRequest(c)); err != nil {
			return redirectWithError(c, "/admin/products", err)
		}
	}

	items := products.State().Items
	if q := c.QueryParam("q"); q != "" {
		filtered := make([]models.Product, 0, len(items))
		for _, p := range items {
			if containsFold(p.ProductName, q) || containsFold(p.ProductCode, q) || containsFold(p.Category, q) {
				filtered = append(filtered, p)
			}
		}
		items = filtered
	}

	f, err := exports.Products(items)
	if err != nil {
		return redirectWithError(c, "/admin/products", &models.APIError{Code: 0, Message: "Xuất file thất bại: " + err.Error()})
	}
	return writeWorkbook(c, f, exports.FileProducts)
}

// Orders downloads the order export.
func (ec *ExportController) Orders(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	orders := ec.stores.For(session.UserID).Orders

	if len(orders.State().Items) == 0 {
		if err := orders.List(c.Request().Context(), session.Token, pageRequest(c)); err != nil {
			return redirectWithError(c, "/admin/orders", err)
		}
	}

	items := orders.State().Items
	if status := c.QueryParam("status"); status != "" {
		filtered := make([]models.Order, 0, len(items))
		for _, o := range items {
			if o.StatusName == status {
				filtered = append(filtered, o)
			}
		}
		items = filtered
	}

	f, err := exports.Orders(items)
	if err != nil {
		return redirectWithError(c, "/admin/orders", &models.APIError{Code: 0, Message: "Xuất file thất bại: " + err.Error()})
	}
	return writeWorkbook(c, f, exports.FileOrders)
}

// Surveys downloads the survey export.
func (ec *ExportController) Surveys(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	surveys := ec.stores.For(session.UserID).Surveys

	if len(surveys.State().Items) == 0 {
		if err := surveys.ListAll(c.Request().Context(), session.Token, pageRequest(c)); err != nil {
			return redirectWithError(c, "/admin/surveys", err)
		}
	}

	f, err := exports.Surveys(surveys.State().Items)
	if err != nil {
		return redirectWithError(c, "/admin/surveys", &models.APIError{Code: 0, Message: "Xuất file thất bại: " + err.Error()})
	}
	return writeWorkbook(c, f, exports.FileSurveys)
}

// Revenue downloads the revenue export across collaborators.
func (ec *ExportController) Revenue(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	stores := ec.stores.For(session.UserID)

	if len(stores.Revenue.State().Items) == 0 {
		if err := stores.Collaborators.List(c.Request().Context(), session.Token, models.PageRequest{Page: 0, Size: 1000}); err != nil {
			return redirectWithError(c, "/admin/revenue", err)
		}
		if err := stores.Revenue.Refresh(c.Request().Context(), session.Token, stores.Collaborators.State().Items); err != nil {
			c.Logger().Warnf("revenue refresh partial failure: %v", err)
		}
	}

	f, err := exports.Revenue(stores.Revenue.State().Items)
	if err != nil {
		return redirectWithError(c, "/admin/revenue", &models.APIError{Code: 0, Message: "Xuất file thất bại: " + err.Error()})
	}
	return writeWorkbook(c, f, exports.FileRevenue)
}

// writeWorkbook streams the workbook as an attachment download.
func writeWorkbook(c echo.Context, f *excelize.File, filename string) error {
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename*=UTF-8''`+url.PathEscape(filename))
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
