// services/revenue_api.go
package services

import (
	"context"
	"net/http"

	"github.com/vinshop/admin_console/models"
)

// RevenueService wraps the /revenue endpoints. There is no bulk endpoint: the
// detail is fetched per collaborator and merged client-side.
type RevenueService struct {
	api *APIClient
}

func NewRevenueService(api *APIClient) *RevenueService {
	return &RevenueService{api: api}
}

// Detail fetches one collaborator's revenue aggregate.
func (s *RevenueService) Detail(ctx context.Context, token, collaboratorID string) (*models.RevenueDetail, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodGet, "/revenue/collaborator/"+collaboratorID, token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.RevenueDetail](raw)
}

// Mine fetches the calling collaborator's own aggregate.
func (s *RevenueService) Mine(ctx context.Context, token string) (*models.RevenueDetail, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodGet, "/revenue/me", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.RevenueDetail](raw)
}
