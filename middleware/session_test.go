package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinshop/admin_console/models"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   "u1",
		ExpiresAt: expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newContext(e *echo.Echo, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSetAndReadSessionRoundTrip(t *testing.T) {
	e := echo.New()
	w := &SessionWriter{MaxAge: 24 * time.Hour}

	c, rec := newContext(e, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	w.Set(c, &models.LoginResult{
		Token:    signedToken(t, time.Now().Add(48*time.Hour)),
		UserID:   "u1",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     models.RoleAdmin,
	})

	// Replay the written cookies on a fresh request, like the browser would.
	readReq := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, cookie := range rec.Result().Cookies() {
		readReq.AddCookie(cookie)
	}
	readCtx, _ := newContext(e, readReq)

	session := ReadSession(readCtx)
	require.NotNil(t, session)
	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, models.RoleAdmin, session.Role)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, "alice@example.com", session.Email)
	assert.NotEmpty(t, session.Token)
}

func TestSessionLifetimeCappedByTokenExpiry(t *testing.T) {
	e := echo.New()
	w := &SessionWriter{MaxAge: 24 * time.Hour}

	// The token expires well before the default session lifetime.
	c, rec := newContext(e, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	w.Set(c, &models.LoginResult{
		Token: signedToken(t, time.Now().Add(time.Hour)),
		Role:  models.RoleUser,
	})

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == CookieToken {
			assert.LessOrEqual(t, cookie.MaxAge, int(time.Hour/time.Second))
			assert.Greater(t, cookie.MaxAge, 0)
			return
		}
	}
	t.Fatal("token cookie not written")
}

func TestClearExpiresAllSessionCookies(t *testing.T) {
	e := echo.New()
	w := &SessionWriter{}

	c, rec := newContext(e, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	w.Clear(c)

	cleared := map[string]bool{}
	for _, cookie := range rec.Result().Cookies() {
		assert.Equal(t, -1, cookie.MaxAge, "cookie %s should expire", cookie.Name)
		cleared[cookie.Name] = true
	}
	for _, name := range []string{CookieToken, CookieUsername, CookieRole, CookieUserID, CookieEmail} {
		assert.True(t, cleared[name], "cookie %s not cleared", name)
	}
}

func TestReadSessionNilWithoutToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: CookieUsername, Value: "alice"})
	c, _ := newContext(e, req)

	assert.Nil(t, ReadSession(c))
}

func TestRequireRoleRedirectsAnonymous(t *testing.T) {
	e := echo.New()
	c, rec := newContext(e, httptest.NewRequest(http.MethodGet, "/admin", nil))

	handler := RequireRole(models.RoleAdmin)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireRoleRedirectsWrongRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: CookieToken, Value: "sometoken"})
	req.AddCookie(&http.Cookie{Name: CookieRole, Value: models.RoleCollaborator})
	c, rec := newContext(e, req)

	handler := RequireRole(models.RoleAdmin)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireRolePassesMatchingRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: CookieToken, Value: "sometoken"})
	req.AddCookie(&http.Cookie{Name: CookieRole, Value: models.RoleAdmin})
	req.AddCookie(&http.Cookie{Name: CookieUsername, Value: "alice"})
	c, rec := newContext(e, req)

	handler := RequireRole(models.RoleAdmin)(func(c echo.Context) error {
		session := SessionFromContext(c)
		require.NotNil(t, session)
		return c.String(http.StatusOK, session.Username)
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())
}
