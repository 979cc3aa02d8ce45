package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/render"
	"github.com/vinshop/admin_console/services"
	"github.com/vinshop/admin_console/store"
)

func envelope(t *testing.T, code int, message string, result interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	body, err := json.Marshal(models.Envelope{Code: code, Message: message, Result: raw})
	require.NoError(t, err)
	return body
}

func testEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	renderer, err := render.New()
	require.NoError(t, err)
	e.Renderer = renderer
	return e
}

// gatedRequest runs a handler behind the role gate with session cookies set,
// the way a real request reaches it.
func gatedRequest(e *echo.Echo, req *http.Request, role string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	req.AddCookie(&http.Cookie{Name: middleware.CookieToken, Value: "jwt-token"})
	req.AddCookie(&http.Cookie{Name: middleware.CookieRole, Value: role})
	req.AddCookie(&http.Cookie{Name: middleware.CookieUserID, Value: "u-collab"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = middleware.RequireRole(role)(handler)(c)
	return rec
}

func orderBackend(t *testing.T, transitions *[]string) *httptest.Server {
	orders := []models.Order{
		{ID: "o-open", StatusName: models.OrderOpen, TotalAmount: 100},
		{ID: "o-progress", StatusName: models.OrderInProgress, TotalAmount: 200},
		{ID: "o-done", StatusName: models.OrderComplete, TotalAmount: 300},
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/orders/history":
			w.Write(envelope(t, models.SuccessCode, "OK", models.Page[models.Order]{
				Items: orders, CurrentPage: 0, TotalPages: 1, TotalElements: 3, PageSize: 10,
			}))
		case strings.HasSuffix(r.URL.Path, "/process"):
			*transitions = append(*transitions, r.URL.Path)
			w.Write(envelope(t, models.SuccessCode, "OK", models.Order{ID: "o-open", StatusName: models.OrderInProgress}))
		case strings.HasSuffix(r.URL.Path, "/complete"):
			*transitions = append(*transitions, r.URL.Path)
			w.Write(envelope(t, models.SuccessCode, "OK", models.Order{ID: "o-progress", StatusName: models.OrderComplete}))
		case strings.HasSuffix(r.URL.Path, "/cancel"):
			*transitions = append(*transitions, r.URL.Path)
			w.Write(envelope(t, models.SuccessCode, "OK", models.Order{ID: "o-open", StatusName: models.OrderCancel}))
		default:
			http.NotFound(w, r)
		}
	}))
}

func loadOrders(t *testing.T, e *echo.Echo, oc *OrderController) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/collaborator/orders", nil)
	rec := gatedRequest(e, req, models.RoleCollaborator, oc.List)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestProcessGuardRefusesNonOpenOrder(t *testing.T) {
	var transitions []string
	backend := orderBackend(t, &transitions)
	defer backend.Close()

	e := testEcho(t)
	oc := NewOrderController(store.NewManager(services.NewAPIClient(backend.URL)))
	loadOrders(t, e, oc)

	req := httptest.NewRequest(http.MethodPost, "/collaborator/orders/o-progress/process", nil)
	rec := gatedRequest(e, req, models.RoleCollaborator, func(c echo.Context) error {
		c.SetParamNames("id")
		c.SetParamValues("o-progress")
		return oc.Process(c)
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	location, err := url.QueryUnescape(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	assert.Contains(t, location, "Đơn hàng không ở trạng thái Open")
	assert.Empty(t, transitions, "backend must not be called for a refused transition")
}

func TestProcessMovesOpenOrder(t *testing.T) {
	var transitions []string
	backend := orderBackend(t, &transitions)
	defer backend.Close()

	e := testEcho(t)
	oc := NewOrderController(store.NewManager(services.NewAPIClient(backend.URL)))
	loadOrders(t, e, oc)

	req := httptest.NewRequest(http.MethodPost, "/collaborator/orders/o-open/process", nil)
	rec := gatedRequest(e, req, models.RoleCollaborator, func(c echo.Context) error {
		c.SetParamNames("id")
		c.SetParamValues("o-open")
		return oc.Process(c)
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"/order/o-open/process"}, transitions)
}

func TestCompleteGuardRequiresInProgress(t *testing.T) {
	var transitions []string
	backend := orderBackend(t, &transitions)
	defer backend.Close()

	e := testEcho(t)
	oc := NewOrderController(store.NewManager(services.NewAPIClient(backend.URL)))
	loadOrders(t, e, oc)

	// o-open cannot be completed before being processed.
	req := httptest.NewRequest(http.MethodPost, "/collaborator/orders/o-open/complete", nil)
	rec := gatedRequest(e, req, models.RoleCollaborator, func(c echo.Context) error {
		c.SetParamNames("id")
		c.SetParamValues("o-open")
		return oc.Complete(c)
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, transitions)

	// o-progress can.
	req = httptest.NewRequest(http.MethodPost, "/collaborator/orders/o-progress/complete", nil)
	rec = gatedRequest(e, req, models.RoleCollaborator, func(c echo.Context) error {
		c.SetParamNames("id")
		c.SetParamValues("o-progress")
		return oc.Complete(c)
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"/order/o-progress/complete"}, transitions)
}

func TestCancelGuardRefusesTerminalOrder(t *testing.T) {
	var transitions []string
	backend := orderBackend(t, &transitions)
	defer backend.Close()

	e := testEcho(t)
	oc := NewOrderController(store.NewManager(services.NewAPIClient(backend.URL)))
	loadOrders(t, e, oc)

	req := httptest.NewRequest(http.MethodPost, "/collaborator/orders/o-done/cancel", nil)
	rec := gatedRequest(e, req, models.RoleCollaborator, func(c echo.Context) error {
		c.SetParamNames("id")
		c.SetParamValues("o-done")
		return oc.Cancel(c)
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	location, err := url.QueryUnescape(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	assert.Contains(t, location, "Đơn hàng đã ở trạng thái cuối")
	assert.Empty(t, transitions)
}

func TestOrderListFiltersWithinLoadedPage(t *testing.T) {
	var transitions []string
	backend := orderBackend(t, &transitions)
	defer backend.Close()

	e := testEcho(t)
	oc := NewOrderController(store.NewManager(services.NewAPIClient(backend.URL)))

	req := httptest.NewRequest(http.MethodGet, "/collaborator/orders?status=Open", nil)
	rec := gatedRequest(e, req, models.RoleCollaborator, oc.List)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "o-open")
	assert.NotContains(t, body, "o-done")
}
