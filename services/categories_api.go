// services/categories_api.go
package services

import (
	"context"
	"net/http"

	"github.com/vinshop/admin_console/models"
)

// CategoryService wraps the /admin/categories endpoint group.
type CategoryService struct {
	api *APIClient
}

func NewCategoryService(api *APIClient) *CategoryService {
	return &CategoryService{api: api}
}

func (s *CategoryService) List(ctx context.Context, token string, pr models.PageRequest) (*models.Page[models.Category], error) {
	raw, err := s.api.makeRequest(ctx, http.MethodGet, "/admin/categories"+pageQuery(pr), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Page[models.Category]](raw)
}

func (s *CategoryService) Create(ctx context.Context, token string, req models.CategoryRequest) (*models.Category, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodPost, "/admin/categories", token, req)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Category](raw)
}

func (s *CategoryService) Update(ctx context.Context, token, id string, req models.CategoryRequest) (*models.Category, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodPut, "/admin/category/"+id, token, req)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Category](raw)
}

func (s *CategoryService) Delete(ctx context.Context, token, id string) error {
	_, err := s.api.makeRequest(ctx, http.MethodDelete, "/admin/category/"+id, token, nil)
	return err
}
