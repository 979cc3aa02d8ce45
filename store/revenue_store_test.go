package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/services"
)

func revenueBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/revenue/collaborator/")
		if id == "c-broken" {
			raw, _ := json.Marshal(models.Envelope{Code: 5000, Message: "Lỗi máy chủ"})
			w.Write(raw)
			return
		}
		detail := models.RevenueDetail{
			CollaboratorID:   id,
			CollaboratorName: "CTV " + id,
			TotalRevenue:     1000,
			TotalCommission:  100,
			CommissionRate:   0.1,
		}
		result, err := json.Marshal(detail)
		require.NoError(t, err)
		raw, err := json.Marshal(models.Envelope{Code: models.SuccessCode, Message: "OK", Result: result})
		require.NoError(t, err)
		w.Write(raw)
	}))
}

func TestRefreshMergesPerCollaboratorDetails(t *testing.T) {
	backend := revenueBackend(t)
	defer backend.Close()

	stores := NewStores(services.NewAPIClient(backend.URL))
	collaborators := []models.Collaborator{
		{ID: "c1", User: models.User{FirstName: "An"}},
		{ID: "c2", User: models.User{FirstName: "Bình"}},
	}

	require.NoError(t, stores.Revenue.Refresh(context.Background(), "token", collaborators))

	state := stores.Revenue.State()
	require.Len(t, state.Items, 2)
	ids := map[string]bool{}
	for _, d := range state.Items {
		ids[d.CollaboratorID] = true
	}
	assert.True(t, ids["c1"] && ids["c2"])
	assert.Nil(t, state.LastError)
}

func TestRefreshKeepsSuccessesWhenOneFetchFails(t *testing.T) {
	backend := revenueBackend(t)
	defer backend.Close()

	stores := NewStores(services.NewAPIClient(backend.URL))
	collaborators := []models.Collaborator{
		{ID: "c1"},
		{ID: "c-broken"},
	}

	err := stores.Revenue.Refresh(context.Background(), "token", collaborators)
	require.Error(t, err)

	state := stores.Revenue.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "c1", state.Items[0].CollaboratorID)
	require.NotNil(t, state.LastError)
	assert.Equal(t, 5000, state.LastError.Code)
}

func TestManagerScopesStoresPerUser(t *testing.T) {
	m := NewManager(services.NewAPIClient("http://localhost:0"))

	alice := m.For("u1")
	assert.Same(t, alice, m.For("u1"))
	assert.NotSame(t, alice, m.For("u2"))

	m.Drop("u1")
	assert.NotSame(t, alice, m.For("u1"))
}
