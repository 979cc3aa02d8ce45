// middleware/session.go
package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/models"
)

// Session cookie names. These five cookies are the whole persisted session;
// login sets them, logout clears them, and nothing else writes them.
const (
	CookieToken    = "token"
	CookieUsername = "username"
	CookieRole     = "role"
	CookieUserID   = "userId"
	CookieEmail    = "email"

	// CookieRememberMe holds the remember-me lookup token, separate from the
	// session proper so it survives logout.
	CookieRememberMe = "rememberMe"
)

const sessionContextKey = "session"

// Session is the signed-in identity read from the cookies.
type Session struct {
	Token    string
	Username string
	Role     string
	UserID   string
	Email    string
}

// SessionWriter owns every cookie write. Handlers never touch cookies
// directly.
type SessionWriter struct {
	MaxAge time.Duration
	Secure bool
}

// Set writes the session cookies from a login result. The lifetime is capped
// at the bearer token's own expiry when that comes sooner than the default.
func (w *SessionWriter) Set(c echo.Context, result *models.LoginResult) {
	maxAge := w.MaxAge
	if exp := tokenExpiry(result.Token); exp > 0 {
		if until := time.Until(time.Unix(exp, 0)); until > 0 && until < maxAge {
			maxAge = until
		}
	}

	for name, value := range map[string]string{
		CookieToken:    result.Token,
		CookieUsername: result.Username,
		CookieRole:     result.Role,
		CookieUserID:   result.UserID,
		CookieEmail:    result.Email,
	} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    value,
			Path:     "/",
			MaxAge:   int(maxAge.Seconds()),
			HttpOnly: true,
			Secure:   w.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// SetRememberMe stores the remember-me lookup token for 30 days.
func (w *SessionWriter) SetRememberMe(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieRememberMe,
		Value:    token,
		Path:     "/auth",
		MaxAge:   int((30 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   w.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires all session cookies.
func (w *SessionWriter) Clear(c echo.Context) {
	for _, name := range []string{CookieToken, CookieUsername, CookieRole, CookieUserID, CookieEmail} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   w.Secure,
		})
	}
}

// ReadSession reads the session cookies; nil when not signed in.
func ReadSession(c echo.Context) *Session {
	token := cookieValue(c, CookieToken)
	if token == "" {
		return nil
	}
	return &Session{
		Token:    token,
		Username: cookieValue(c, CookieUsername),
		Role:     cookieValue(c, CookieRole),
		UserID:   cookieValue(c, CookieUserID),
		Email:    cookieValue(c, CookieEmail),
	}
}

// SessionFromContext returns the session the role gate stored, nil outside
// gated routes.
func SessionFromContext(c echo.Context) *Session {
	if s, ok := c.Get(sessionContextKey).(*Session); ok {
		return s
	}
	return nil
}

// RememberMeToken reads the remember-me cookie, empty when absent.
func RememberMeToken(c echo.Context) string {
	return cookieValue(c, CookieRememberMe)
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// tokenExpiry extracts the exp claim without verifying the signature. The
// console never trusts the token's contents for authorization; the backend
// validates it on every call.
func tokenExpiry(tokenString string) int64 {
	claims := &jwt.StandardClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return 0
	}
	return claims.ExpiresAt
}
