// controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/forms"
	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/services"
	"github.com/vinshop/admin_console/store"
)

// AuthController serves the /auth pages: login, register, forgot-password,
// logout. Credentials are forwarded to the backend; the console never checks
// a password itself.
type AuthController struct {
	auth     *services.AuthService
	remember *services.RememberMeService
	sessions *middleware.SessionWriter
	stores   *store.Manager
	forms    *forms.Validator
}

func NewAuthController(auth *services.AuthService, remember *services.RememberMeService, sessions *middleware.SessionWriter, stores *store.Manager, validator *forms.Validator) *AuthController {
	return &AuthController{auth: auth, remember: remember, sessions: sessions, stores: stores, forms: validator}
}

// LoginPage renders the login form, prefilling the username from a
// remember-me hint when one is stored.
func (ac *AuthController) LoginPage(c echo.Context) error {
	data := newPageData(c)

	if ac.remember.Enabled() {
		if token := middleware.RememberMeToken(c); token != "" {
			hint, err := ac.remember.Lookup(c.Request().Context(), token)
			if err == nil && hint != nil {
				data["Username"] = hint.Username
				data["RememberMe"] = true
			}
		}
	}

	return c.Render(http.StatusOK, "login", data)
}

// Login handles the login form post.
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.Render(http.StatusBadRequest, "login", withFormError(newPageData(c), "Dữ liệu không hợp lệ"))
	}

	if errs := ac.forms.Check(req); errs.HasErrors() {
		data := newPageData(c)
		data["FieldErrors"] = errs
		data["Username"] = req.Username
		return c.Render(http.StatusOK, "login", data)
	}

	result, err := ac.auth.Login(c.Request().Context(), req)
	if err != nil {
		data := newPageData(c)
		data["Error"] = errorText(err)
		data["Username"] = req.Username
		return c.Render(http.StatusOK, "login", data)
	}

	ac.sessions.Set(c, result)

	if req.RememberMe && ac.remember.Enabled() {
		token, err := ac.remember.Store(c.Request().Context(), services.LoginHint{Username: result.Username})
		if err == nil {
			ac.sessions.SetRememberMe(c, token)
		} else {
			c.Logger().Warnf("remember-me store failed: %v", err)
		}
	}

	return c.Redirect(http.StatusFound, homeFor(result.Role))
}

// RegisterPage renders the self-registration form.
func (ac *AuthController) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register", newPageData(c))
}

// Register handles the registration form post and signs the new user in.
func (ac *AuthController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.Render(http.StatusBadRequest, "register", withFormError(newPageData(c), "Dữ liệu không hợp lệ"))
	}

	if errs := ac.forms.Check(req); errs.HasErrors() {
		data := newPageData(c)
		data["FieldErrors"] = errs
		data["Form"] = req
		return c.Render(http.StatusOK, "register", data)
	}

	result, err := ac.auth.Register(c.Request().Context(), req)
	if err != nil {
		data := newPageData(c)
		data["Error"] = errorText(err)
		data["Form"] = req
		return c.Render(http.StatusOK, "register", data)
	}

	ac.sessions.Set(c, result)
	return c.Redirect(http.StatusFound, homeFor(result.Role))
}

// ForgotPasswordPage renders the reset-request form.
func (ac *AuthController) ForgotPasswordPage(c echo.Context) error {
	return c.Render(http.StatusOK, "forgot", newPageData(c))
}

// ForgotPassword forwards the reset request to the backend.
func (ac *AuthController) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.Render(http.StatusBadRequest, "forgot", withFormError(newPageData(c), "Dữ liệu không hợp lệ"))
	}

	if errs := ac.forms.Check(req); errs.HasErrors() {
		data := newPageData(c)
		data["FieldErrors"] = errs
		return c.Render(http.StatusOK, "forgot", data)
	}

	if err := ac.auth.ForgotPassword(c.Request().Context(), req); err != nil {
		data := newPageData(c)
		data["Error"] = errorText(err)
		return c.Render(http.StatusOK, "forgot", data)
	}

	return redirectWithToast(c, "/auth/login", "Đã gửi email đặt lại mật khẩu")
}

// Logout invalidates the backend token, drops the mirrored state and clears
// the session cookies. A backend failure still logs the user out locally.
func (ac *AuthController) Logout(c echo.Context) error {
	if session := middleware.ReadSession(c); session != nil {
		if err := ac.auth.Logout(c.Request().Context(), session.Token); err != nil {
			c.Logger().Warnf("backend logout failed: %v", err)
		}
		ac.stores.Drop(session.UserID)
	}
	ac.sessions.Clear(c)
	return c.Redirect(http.StatusFound, "/auth/login")
}

func withFormError(data PageData, msg string) PageData {
	data["Error"] = msg
	return data
}

// homeFor maps a role to its landing page.
func homeFor(role string) string {
	switch role {
	case models.RoleAdmin:
		return "/admin"
	case models.RoleCollaborator:
		return "/collaborator"
	default:
		return "/user"
	}
}
