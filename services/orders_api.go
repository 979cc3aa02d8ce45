// services/orders_api.go
package services

import (
	"context"
	"net/http"

	"github.com/vinshop/admin_console/models"
)

// OrderService wraps the order endpoints. The backend is the authority on
// status transitions; the console refuses obviously invalid ones before
// calling, but a 2000 response is what actually moves an order.
type OrderService struct {
	api *APIClient
}

func NewOrderService(api *APIClient) *OrderService {
	return &OrderService{api: api}
}

// History lists orders visible to the caller: all orders for admins, handled
// orders for collaborators.
func (s *OrderService) History(ctx context.Context, token string, pr models.PageRequest) (*models.Page[models.Order], error) {
	raw, err := s.api.makeRequest(ctx, http.MethodGet, "/orders/history"+pageQuery(pr), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Page[models.Order]](raw)
}

func (s *OrderService) Get(ctx context.Context, token, id string) (*models.Order, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodGet, "/order/"+id, token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Order](raw)
}

// Process assigns an Open order to the calling collaborator (-> In Progress).
func (s *OrderService) Process(ctx context.Context, token, id string) (*models.Order, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodPost, "/order/"+id+"/process", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Order](raw)
}

// Complete finishes an In Progress order.
func (s *OrderService) Complete(ctx context.Context, token, id string) (*models.Order, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodPost, "/order/"+id+"/complete", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Order](raw)
}

// Cancel moves a non-terminal order into the Cancel terminal state.
func (s *OrderService) Cancel(ctx context.Context, token, id string) (*models.Order, error) {
	raw, err := s.api.makeRequest(ctx, http.MethodPost, "/order/"+id+"/cancel", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeResult[models.Order](raw)
}
