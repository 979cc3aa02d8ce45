package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinshop/admin_console/forms"
	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/services"
	"github.com/vinshop/admin_console/store"
)

func jsonDecode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func authBackend(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			body := map[string]string{}
			require.NoError(t, jsonDecode(r, &body))
			if body["username"] == "alice" && body["password"] == "secret12" {
				w.Write(envelope(t, models.SuccessCode, "OK", models.LoginResult{
					Token: "jwt-token", UserID: "u1", Username: "alice",
					Email: "alice@example.com", Role: models.RoleAdmin,
				}))
				return
			}
			w.Write(envelope(t, 4010, "Sai tên đăng nhập hoặc mật khẩu", nil))
		case "/auth/logout":
			w.Write(envelope(t, models.SuccessCode, "OK", nil))
		default:
			http.NotFound(w, r)
		}
	}))
}

func newAuthController(backendURL string) *AuthController {
	api := services.NewAPIClient(backendURL)
	return NewAuthController(
		services.NewAuthService(api),
		services.NewRememberMeService(nil),
		&middleware.SessionWriter{MaxAge: 24 * time.Hour},
		store.NewManager(api),
		forms.New(),
	)
}

func postForm(e *echo.Echo, path string, form url.Values, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler(c)
	return rec
}

func TestLoginSetsSessionAndRedirectsToAdminHome(t *testing.T) {
	backend := authBackend(t)
	defer backend.Close()

	e := testEcho(t)
	ac := newAuthController(backend.URL)

	rec := postForm(e, "/auth/login", url.Values{
		"username": {"alice"},
		"password": {"secret12"},
	}, ac.Login)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get(echo.HeaderLocation))

	cookies := map[string]string{}
	for _, cookie := range rec.Result().Cookies() {
		cookies[cookie.Name] = cookie.Value
	}
	assert.Equal(t, "jwt-token", cookies[middleware.CookieToken])
	assert.Equal(t, "alice", cookies[middleware.CookieUsername])
	assert.Equal(t, models.RoleAdmin, cookies[middleware.CookieRole])
}

func TestLoginRejectionRendersFormWithMessage(t *testing.T) {
	backend := authBackend(t)
	defer backend.Close()

	e := testEcho(t)
	ac := newAuthController(backend.URL)

	rec := postForm(e, "/auth/login", url.Values{
		"username": {"alice"},
		"password": {"wrongpass"},
	}, ac.Login)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sai tên đăng nhập hoặc mật khẩu")
	// The username survives the round trip so the user only retypes the password.
	assert.Contains(t, rec.Body.String(), `value="alice"`)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLoginValidationBlocksShortPassword(t *testing.T) {
	backend := authBackend(t)
	defer backend.Close()

	e := testEcho(t)
	ac := newAuthController(backend.URL)

	rec := postForm(e, "/auth/login", url.Values{
		"username": {"alice"},
		"password": {"short"},
	}, ac.Login)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tối thiểu 8 ký tự")
}

func TestLogoutClearsSession(t *testing.T) {
	backend := authBackend(t)
	defer backend.Close()

	e := testEcho(t)
	ac := newAuthController(backend.URL)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieToken, Value: "jwt-token"})
	req.AddCookie(&http.Cookie{Name: middleware.CookieUserID, Value: "u1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, ac.Logout(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
	for _, cookie := range rec.Result().Cookies() {
		assert.Equal(t, -1, cookie.MaxAge, "cookie %s should expire", cookie.Name)
	}
}
