// controllers/user_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/forms"
	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/store"
)

// UserController serves the admin user pages.
type UserController struct {
	stores *store.Manager
	forms  *forms.Validator
}

func NewUserController(stores *store.Manager, validator *forms.Validator) *UserController {
	return &UserController{stores: stores, forms: validator}
}

// List renders the paginated user table. The q filter narrows only the rows of
// the currently loaded page; paging always goes back to the server.
func (uc *UserController) List(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	users := uc.stores.For(session.UserID).Users

	if err := users.List(c.Request().Context(), session.Token, pageRequest(c)); err != nil {
		c.Logger().Errorf("user list failed: %v", err)
	}
	state := users.State()

	items := state.Items
	if q := c.QueryParam("q"); q != "" {
		filtered := make([]models.User, 0, len(items))
		for _, u := range items {
			if containsFold(u.Username, q) || containsFold(u.Email, q) || containsFold(u.FullName(), q) {
				filtered = append(filtered, u)
			}
		}
		items = filtered
	}

	data := newPageData(c)
	data["Users"] = items
	data["Query"] = c.QueryParam("q")
	data["Meta"] = listMeta(state)
	if state.LastError != nil {
		data["Error"] = state.LastError.Message
	}
	return c.Render(http.StatusOK, "users_list", data)
}

// NewPage renders the empty create-user form.
func (uc *UserController) NewPage(c echo.Context) error {
	data := newPageData(c)
	data["Roles"] = []string{models.RoleAdmin, models.RoleCollaborator, models.RoleUser}
	return c.Render(http.StatusOK, "user_form", data)
}

// Create handles the create-user form post.
func (uc *UserController) Create(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return redirectWithError(c, "/admin/users/new", err)
	}

	if errs := uc.forms.Check(req); errs.HasErrors() {
		data := newPageData(c)
		data["FieldErrors"] = errs
		data["Form"] = req
		data["Roles"] = []string{models.RoleAdmin, models.RoleCollaborator, models.RoleUser}
		return c.Render(http.StatusOK, "user_form", data)
	}

	if _, err := uc.stores.For(session.UserID).Users.Create(c.Request().Context(), session.Token, req); err != nil {
		return redirectWithError(c, "/admin/users", err)
	}
	return redirectWithToast(c, "/admin/users", "Đã tạo người dùng")
}

// EditPage renders the update form for one user.
func (uc *UserController) EditPage(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	id := c.Param("id")

	var user *models.User
	for _, u := range uc.stores.For(session.UserID).Users.State().Items {
		if u.ID == id {
			user = &u
			break
		}
	}
	if user == nil {
		return redirectWithError(c, "/admin/users", &models.APIError{Code: 0, Message: "Không tìm thấy người dùng"})
	}

	data := newPageData(c)
	data["User"] = user
	data["Roles"] = []string{models.RoleAdmin, models.RoleCollaborator, models.RoleUser}
	return c.Render(http.StatusOK, "user_form", data)
}

// Update handles the update form post.
func (uc *UserController) Update(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	id := c.Param("id")

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return redirectWithError(c, "/admin/users", err)
	}

	if errs := uc.forms.Check(req); errs.HasErrors() {
		data := newPageData(c)
		data["FieldErrors"] = errs
		data["Form"] = req
		data["Roles"] = []string{models.RoleAdmin, models.RoleCollaborator, models.RoleUser}
		return c.Render(http.StatusOK, "user_form", data)
	}

	if _, err := uc.stores.For(session.UserID).Users.Update(c.Request().Context(), session.Token, id, req); err != nil {
		return redirectWithError(c, "/admin/users", err)
	}
	return redirectWithToast(c, "/admin/users", "Đã cập nhật người dùng")
}

// Delete removes one user.
func (uc *UserController) Delete(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if err := uc.stores.For(session.UserID).Users.Delete(c.Request().Context(), session.Token, c.Param("id")); err != nil {
		return redirectWithError(c, "/admin/users", err)
	}
	return redirectWithToast(c, "/admin/users", "Đã xóa người dùng")
}

// DeleteMany removes the rows checked on the list page.
func (uc *UserController) DeleteMany(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	var req models.DeleteManyRequest
	if err := c.Bind(&req); err != nil {
		return redirectWithError(c, "/admin/users", err)
	}
	if errs := uc.forms.Check(req); errs.HasErrors() {
		return redirectWithError(c, "/admin/users", &models.APIError{Code: 0, Message: "Chưa chọn dòng nào"})
	}

	if err := uc.stores.For(session.UserID).Users.DeleteMany(c.Request().Context(), session.Token, req.IDs); err != nil {
		return redirectWithError(c, "/admin/users", err)
	}
	return redirectWithToast(c, "/admin/users", "Đã xóa các người dùng đã chọn")
}
