// services/auth_api.go
package services

import (
	"context"
	"net/http"

	"github.com/vinshop/admin_console/models"
)

// AuthService wraps the /auth endpoint group.
type AuthService struct {
	api *APIClient
}

func NewAuthService(api *APIClient) *AuthService {
	return &AuthService{api: api}
}

// Login exchanges credentials for a bearer token and the session identity.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodPost, "/auth/login", "", req)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.LoginResult](raw)
}

// Register self-registers a ROLE_User account and logs it in.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResult, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodPost, "/auth/register", "", req)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.LoginResult](raw)
}

// Logout invalidates the bearer token on the backend. A failure here is logged
// but never blocks clearing the local session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	_, err := s.api.makeRequest(ctx, http.MethodPost, "/auth/logout", token, nil)
	return err
}

// ForgotPassword asks the backend to send a reset mail.
func (s *AuthService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	_, err := s.api.makeRequest(ctx, http.MethodPost, "/auth/forgot-password", "", req)
	return err
}
