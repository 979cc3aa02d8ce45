// services/collaborators_api.go
package services

import (
	"context"
	"net/http"

	"github.com/vinshop/admin_console/models"
)

// CollaboratorService wraps the /admin/collaborators endpoint group.
type CollaboratorService struct {
	api *APIClient
}

func NewCollaboratorService(api *APIClient) *CollaboratorService {
	return &CollaboratorService{api: api}
}

func (s *CollaboratorService) List(ctx context.Context, token string, pr models.PageRequest) (*models.Page[models.Collaborator], error) {
	raw, err := s.api.makeRequest(ctx, http.MethodGet, "/admin/collaborators"+pageQuery(pr), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Page[models.Collaborator]](raw)
}

// Create wraps a user creation with a commission rate; the backend creates the
// user and the collaborator record in one transaction.
func (s *CollaboratorService) Create(ctx context.Context, token string, req models.CreateCollaboratorRequest) (*models.Collaborator, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodPost, "/admin/collaborators", token, req)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Collaborator](raw)
}

// Update mutates the commission rate independently of the embedded user.
func (s *CollaboratorService) Update(ctx context.Context, token, id string, req models.UpdateCollaboratorRequest) (*models.Collaborator, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodPut, "/admin/collaborator/"+id, token, req)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Collaborator](raw)
}

func (s *CollaboratorService) Delete(ctx context.Context, token, id string) error {
	_, err := s.api.makeRequest(ctx, http.MethodDelete, "/admin/collaborator/"+id, token, nil)
	return err
}
