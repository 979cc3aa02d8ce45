// services/users_api.go
package services

import (
	"context"
	"net/http"

	"github.com/vinshop/admin_console/models"
)

// UserService wraps the /admin/users endpoint group.
type UserService struct {
	api *APIClient
}

func NewUserService(api *APIClient) *UserService {
	return &UserService{api: api}
}

func (s *UserService) List(ctx context.Context, token string, pr models.PageRequest) (*models.Page[models.User], error) {
	raw, err := s.api.makeRequest(ctx, http.MethodGet, "/admin/users"+pageQuery(pr), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Page[models.User]](raw)
}

func (s *UserService) Get(ctx context.Context, token, id string) (*models.User, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodGet, "/admin/user/"+id, token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.User](raw)
}

func (s *UserService) Create(ctx context.Context, token string, req models.CreateUserRequest) (*models.User, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodPost, "/admin/users", token, req)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.User](raw)
}

func (s *UserService) Update(ctx context.Context, token, id string, req models.UpdateUserRequest) (*models.User, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodPut, "/admin/user/"+id, token, req)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.User](raw)
}

func (s *UserService) Delete(ctx context.Context, token, id string) error {
	_, err := s.api.makeRequest(ctx, http.MethodDelete, "/admin/user/"+id, token, nil)
	return err
}

// DeleteMany removes the checked rows of a list page in one call.
func (s *UserService) DeleteMany(ctx context.Context, token string, ids []string) error {
	_, err := s.api.makeRequest(ctx, http.MethodPost, "/admin/users/delete", token, models.DeleteManyRequest{IDs: ids})
	return err
}
