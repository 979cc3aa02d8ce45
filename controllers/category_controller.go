// controllers/category_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/forms"
	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/store"
)

// CategoryController serves the admin category pages.
type CategoryController struct {
	stores *store.Manager
	forms  *forms.Validator
}

func NewCategoryController(stores *store.Manager, validator *forms.Validator) *CategoryController {
	return &CategoryController{stores: stores, forms: validator}
}

// List renders the category table.
func (cc *CategoryController) List(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	categories := cc.stores.For(session.UserID).Categories

	if err := categories.List(c.Request().Context(), session.Token, pageRequest(c)); err != nil {
		c.Logger().Errorf("category list failed: %v", err)
	}
	state := categories.State()

	data := newPageData(c)
	data["Categories"] = state.Items
	data["Meta"] = listMeta(state)
	if state.LastError != nil {
		data["Error"] = state.LastError.Message
	}
	return c.Render(http.StatusOK, "categories_list", data)
}

// NewPage renders the empty category form.
func (cc *CategoryController) NewPage(c echo.Context) error {
	return c.Render(http.StatusOK, "category_form", newPageData(c))
}

// Create handles the category form post.
func (cc *CategoryController) Create(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return redirectWithError(c, "/admin/categories/new", err)
	}

	if errs := cc.forms.Check(req); errs.HasErrors() {
		data := newPageData(c)
		data["FieldErrors"] = errs
		data["Form"] = req
		return c.Render(http.StatusOK, "category_form", data)
	}

	if _, err := cc.stores.For(session.UserID).Categories.Create(c.Request().Context(), session.Token, req); err != nil {
		return redirectWithError(c, "/admin/categories", err)
	}
	return redirectWithToast(c, "/admin/categories", "Đã tạo danh mục")
}

// EditPage renders the update form for one category.
func (cc *CategoryController) EditPage(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	id := c.Param("id")

	for _, cat := range cc.stores.For(session.UserID).Categories.State().Items {
		if cat.ID == id {
			data := newPageData(c)
			data["Category"] = cat
			return c.Render(http.StatusOK, "category_form", data)
		}
	}
	return redirectWithError(c, "/admin/categories", &models.APIError{Code: 0, Message: "Không tìm thấy danh mục"})
}

// Update handles the category update post.
func (cc *CategoryController) Update(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	id := c.Param("id")

	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return redirectWithError(c, "/admin/categories", err)
	}

	if errs := cc.forms.Check(req); errs.HasErrors() {
		data := newPageData(c)
		data["FieldErrors"] = errs
		data["Form"] = req
		return c.Render(http.StatusOK, "category_form", data)
	}

	if _, err := cc.stores.For(session.UserID).Categories.Update(c.Request().Context(), session.Token, id, req); err != nil {
		return redirectWithError(c, "/admin/categories", err)
	}
	return redirectWithToast(c, "/admin/categories", "Đã cập nhật danh mục")
}

// Delete removes one category. Products referencing it by name keep the stale
// name; the backend owns that consistency question.
func (cc *CategoryController) Delete(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if err := cc.stores.For(session.UserID).Categories.Delete(c.Request().Context(), session.Token, c.Param("id")); err != nil {
		return redirectWithError(c, "/admin/categories", err)
	}
	return redirectWithToast(c, "/admin/categories", "Đã xóa danh mục")
}
