// controllers/collaborator_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/forms"
	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/store"
)

// CollaboratorController serves the admin collaborator pages.
type CollaboratorController struct {
	stores *store.Manager
	forms  *forms.Validator
}

func NewCollaboratorController(stores *store.Manager, validator *forms.Validator) *CollaboratorController {
	return &CollaboratorController{stores: stores, forms: validator}
}

// List renders the collaborator table.
func (cc *CollaboratorController) List(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	collaborators := cc.stores.For(session.UserID).Collaborators

	if err := collaborators.List(c.Request().Context(), session.Token, pageRequest(c)); err != nil {
		c.Logger().Errorf("collaborator list failed: %v", err)
	}
	state := collaborators.State()

	items := state.Items
	if q := c.QueryParam("q"); q != "" {
		filtered := make([]models.Collaborator, 0, len(items))
		for _, collab := range items {
			if containsFold(collab.User.Username, q) || containsFold(collab.ReferralCode, q) {
				filtered = append(filtered, collab)
			}
		}
		items = filtered
	}

	data := newPageData(c)
	data["Collaborators"] = items
	data["Query"] = c.QueryParam("q")
	data["Meta"] = listMeta(state)
	if state.LastError != nil {
		data["Error"] = state.LastError.Message
	}
	return c.Render(http.StatusOK, "collaborators_list", data)
}

// NewPage renders the create form: user fields plus the commission rate.
func (cc *CollaboratorController) NewPage(c echo.Context) error {
	return c.Render(http.StatusOK, "collaborator_form", newPageData(c))
}

// Create handles the create post. CommissionRate outside [0, 1] is blocked
// with a field error before anything is sent; 0 and 1 are both accepted.
func (cc *CollaboratorController) Create(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	var req models.CreateCollaboratorRequest
	if err := c.Bind(&req); err != nil {
		return redirectWithError(c, "/admin/collaborators/new", err)
	}
	req.Role = models.RoleCollaborator

	if errs := cc.forms.Check(req); errs.HasErrors() {
		data := newPageData(c)
		data["FieldErrors"] = errs
		data["Form"] = req
		return c.Render(http.StatusOK, "collaborator_form", data)
	}

	if _, err := cc.stores.For(session.UserID).Collaborators.Create(c.Request().Context(), session.Token, req); err != nil {
		return redirectWithError(c, "/admin/collaborators", err)
	}
	return redirectWithToast(c, "/admin/collaborators", "Đã tạo cộng tác viên")
}

// EditPage renders the commission-rate form for one collaborator.
func (cc *CollaboratorController) EditPage(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	id := c.Param("id")

	for _, collab := range cc.stores.For(session.UserID).Collaborators.State().Items {
		if collab.ID == id {
			data := newPageData(c)
			data["Collaborator"] = collab
			return c.Render(http.StatusOK, "collaborator_form", data)
		}
	}
	return redirectWithError(c, "/admin/collaborators", &models.APIError{Code: 0, Message: "Không tìm thấy cộng tác viên"})
}

// Update mutates the commission rate only.
func (cc *CollaboratorController) Update(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	id := c.Param("id")

	var req models.UpdateCollaboratorRequest
	if err := c.Bind(&req); err != nil {
		return redirectWithError(c, "/admin/collaborators", err)
	}

	if errs := cc.forms.Check(req); errs.HasErrors() {
		data := newPageData(c)
		data["FieldErrors"] = errs
		data["Form"] = req
		return c.Render(http.StatusOK, "collaborator_form", data)
	}

	if _, err := cc.stores.For(session.UserID).Collaborators.Update(c.Request().Context(), session.Token, id, req); err != nil {
		return redirectWithError(c, "/admin/collaborators", err)
	}
	return redirectWithToast(c, "/admin/collaborators", "Đã cập nhật cộng tác viên")
}

// Delete removes one collaborator.
func (cc *CollaboratorController) Delete(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if err := cc.stores.For(session.UserID).Collaborators.Delete(c.Request().Context(), session.Token, c.Param("id")); err != nil {
		return redirectWithError(c, "/admin/collaborators", err)
	}
	return redirectWithToast(c, "/admin/collaborators", "Đã xóa cộng tác viên")
}
