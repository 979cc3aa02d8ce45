package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/services"
	"github.com/vinshop/admin_console/store"
)

func dashboardBackend(t *testing.T) *httptest.Server {
	orderDate := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/users":
			w.Write(envelope(t, models.SuccessCode, "OK", models.Page[models.User]{
				Items: []models.User{
					{ID: "u1", Username: "alice", Role: models.RoleAdmin, TotalSpent: 0},
					{ID: "u2", Username: "bob", Role: models.RoleUser, TotalSpent: 300},
				},
				TotalPages: 1, TotalElements: 2, PageSize: 1000,
			}))
		case "/orders/history":
			w.Write(envelope(t, models.SuccessCode, "OK", models.Page[models.Order]{
				Items: []models.Order{
					{
						ID: "o1", StatusName: models.OrderComplete, TotalAmount: 300, OrderDate: orderDate,
						Buyer: &models.User{Username: "bob"},
						Items: []models.OrderItem{{Product: models.Product{ProductName: "Gói Cao Cấp"}, Quantity: 2}},
					},
					{ID: "o2", StatusName: models.OrderOpen, TotalAmount: 100, OrderDate: orderDate},
				},
				TotalPages: 1, TotalElements: 2, PageSize: 1000,
			}))
		case "/admin/collaborators":
			w.Write(envelope(t, models.SuccessCode, "OK", models.Page[models.Collaborator]{
				Items: []models.Collaborator{
					{ID: "c1", User: models.User{Username: "ctv1"}, CommissionRate: 0.1, TotalCommissionEarned: 30},
				},
				TotalPages: 1, TotalElements: 1, PageSize: 1000,
			}))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestAdminDashboardRendersForAdminRole(t *testing.T) {
	backend := dashboardBackend(t)
	defer backend.Close()

	e := testEcho(t)
	dc := NewDashboardController(store.NewManager(services.NewAPIClient(backend.URL)))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := gatedRequest(e, req, models.RoleAdmin, dc.Admin)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "ADMIN DASHBOARD")
	// Revenue counts completed orders only.
	assert.Contains(t, body, "300 ₫")
	assert.Contains(t, body, "2026-03")
	assert.Contains(t, body, "Gói Cao Cấp")
	assert.Contains(t, body, "ctv1")
}

func TestAdminDashboardRedirectsCollaborator(t *testing.T) {
	backend := dashboardBackend(t)
	defer backend.Close()

	e := testEcho(t)
	dc := NewDashboardController(store.NewManager(services.NewAPIClient(backend.URL)))

	// The gate checks the admin role; a collaborator session never reaches the
	// handler.
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "jwt-token"})
	req.AddCookie(&http.Cookie{Name: "role", Value: models.RoleCollaborator})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	handler := middleware.RequireRole(models.RoleAdmin)(dc.Admin)
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
}
