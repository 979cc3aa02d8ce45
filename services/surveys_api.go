// services/surveys_api.go
package services

import (
	"context"
	"net/http"

	"github.com/vinshop/admin_console/models"
)

// SurveyService wraps the survey/support-ticket endpoints.
type SurveyService struct {
	api *APIClient
}

func NewSurveyService(api *APIClient) *SurveyService {
	return &SurveyService{api: api}
}

// ListAll is the admin overview across every survey.
func (s *SurveyService) ListAll(ctx context.Context, token string, pr models.PageRequest) (*models.Page[models.Survey], error) {
	raw, err := s.api.makeRequest(ctx, http.MethodGet, "/admin/surveys"+pageQuery(pr), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Page[models.Survey]](raw)
}

// ListOpen lists unassigned surveys a collaborator may take.
func (s *SurveyService) ListOpen(ctx context.Context, token string, pr models.PageRequest) (*models.Page[models.Survey], error) {
	raw, err := s.api.makeRequest(ctx, http.MethodGet, "/collaborator/survey/open"+pageQuery(pr), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Page[models.Survey]](raw)
}

// ListMine lists surveys assigned to the calling collaborator.
func (s *SurveyService) ListMine(ctx context.Context, token string, pr models.PageRequest) (*models.Page[models.Survey], error) {
	raw, err := s.api.makeRequest(ctx, http.MethodGet, "/collaborator/survey/mine"+pageQuery(pr), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Page[models.Survey]](raw)
}

// Take assigns an Open survey to the calling collaborator (-> In Progress).
func (s *SurveyService) Take(ctx context.Context, token, id string) (*models.Survey, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodPost, "/collaborator/survey/"+id+"/take", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Survey](raw)
}

// Respond submits the answer and completes the survey.
func (s *SurveyService) Respond(ctx context.Context, token, id string, req models.SurveyResponseRequest) (*models.Survey, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodPost, "/collaborator/survey/"+id+"/response", token, req)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Survey](raw)
}
