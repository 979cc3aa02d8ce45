// services/roles_api.go
package services

import (
	"context"
	"net/http"

	"github.com/vinshop/admin_console/models"
)

// RoleService wraps the /admin/roles lookup endpoint.
type RoleService struct {
	api *APIClient
}

func NewRoleService(api *APIClient) *RoleService {
	return &RoleService{api: api}
}

func (s *RoleService) List(ctx context.Context, token string) ([]models.Role, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodGet, "/admin/roles", token, nil)
	if err != nil {
		return nil, err
	}
	roles, err := decodeResult[[]models.Role](raw)
	if err != nil {
		return nil, err
	}
	return *roles, nil
}
