package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinshop/admin_console/models"
)

func envelope(code int, message string, result interface{}) []byte {
	raw, _ := json.Marshal(result)
	body, _ := json.Marshal(models.Envelope{Code: code, Message: message, Result: raw})
	return body
}

func TestLoginSuccess(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Username != "alice" || req.Password != "secret12" {
			w.Write(envelope(4010, "Sai tên đăng nhập hoặc mật khẩu", nil))
			return
		}
		w.Write(envelope(models.SuccessCode, "OK", models.LoginResult{
			Token: "jwt-token", UserID: "u1", Username: "alice",
			Email: "alice@example.com", Role: models.RoleAdmin,
		}))
	}))
	defer backend.Close()

	auth := NewAuthService(NewAPIClient(backend.URL))

	result, err := auth.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret12"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", result.Token)
	assert.Equal(t, models.RoleAdmin, result.Role)
}

func TestLoginRejectionComesBackAsAPIError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(envelope(4010, "Sai tên đăng nhập hoặc mật khẩu", nil))
	}))
	defer backend.Close()

	auth := NewAuthService(NewAPIClient(backend.URL))

	_, err := auth.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "wrongpass"})
	require.Error(t, err)

	apiErr, ok := err.(*models.APIError)
	require.True(t, ok)
	assert.Equal(t, 4010, apiErr.Code)
	assert.Equal(t, "Sai tên đăng nhập hoặc mật khẩu", apiErr.Message)
}

func TestTransportFailureUsesCodeZero(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // connection refused from here on

	auth := NewAuthService(NewAPIClient(backend.URL))

	_, err := auth.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret12"})
	require.Error(t, err)

	apiErr, ok := err.(*models.APIError)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Code)
}

func TestUnparseableResponseUsesCodeZero(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer backend.Close()

	users := NewUserService(NewAPIClient(backend.URL))

	_, err := users.List(context.Background(), "token", models.PageRequest{Size: 10})
	require.Error(t, err)

	apiErr, ok := err.(*models.APIError)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Code)
	assert.Contains(t, apiErr.Message, "502")
}

func TestListSendsPageQueryAndBearerToken(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/users", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("size"))
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))

		w.Write(envelope(models.SuccessCode, "OK", models.Page[models.User]{
			Items:         []models.User{{ID: "u1", Username: "alice"}},
			CurrentPage:   2,
			TotalPages:    5,
			TotalElements: 120,
			PageSize:      25,
		}))
	}))
	defer backend.Close()

	users := NewUserService(NewAPIClient(backend.URL))

	page, err := users.List(context.Background(), "jwt-token", models.PageRequest{Page: 2, Size: 25})
	require.NoError(t, err)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, int64(120), page.TotalElements)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "alice", page.Items[0].Username)
}

func TestContextCancellationAbortsCall(t *testing.T) {
	started := make(chan struct{})
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer backend.Close()

	users := NewUserService(NewAPIClient(backend.URL))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := users.List(ctx, "token", models.PageRequest{Size: 10})
	require.Error(t, err)
	apiErr, ok := err.(*models.APIError)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Code)
}
