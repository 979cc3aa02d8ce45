package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinshop/admin_console/models"
)

func userContainer() *Container[models.User] {
	return NewContainer(func(u models.User) string { return u.ID })
}

func TestCompleteFetchReplacesState(t *testing.T) {
	c := userContainer()

	gen := c.BeginFetch()
	assert.True(t, c.Snapshot().Loading)

	page := &models.Page[models.User]{
		Items:         []models.User{{ID: "u1", Username: "alice"}, {ID: "u2", Username: "bob"}},
		CurrentPage:   0,
		TotalPages:    3,
		TotalElements: 25,
		PageSize:      10,
	}
	require.True(t, c.CompleteFetch(gen, page, nil))

	state := c.Snapshot()
	assert.False(t, state.Loading)
	assert.Nil(t, state.LastError)
	assert.Len(t, state.Items, 2)
	assert.Equal(t, 0, state.CurrentPage)
	assert.Equal(t, 3, state.TotalPages)
	assert.Equal(t, int64(25), state.TotalElements)
	assert.Equal(t, 10, state.PageSize)
}

func TestCompleteFetchDiscardsSupersededResponse(t *testing.T) {
	c := userContainer()

	genOld := c.BeginFetch()
	genNew := c.BeginFetch()

	newPage := &models.Page[models.User]{
		Items: []models.User{{ID: "u2"}}, TotalPages: 1, TotalElements: 1, PageSize: 10,
	}
	require.True(t, c.CompleteFetch(genNew, newPage, nil))

	// The older fetch finishes late; its page must not clobber the newer one.
	oldPage := &models.Page[models.User]{
		Items: []models.User{{ID: "u1"}}, TotalPages: 1, TotalElements: 1, PageSize: 10,
	}
	assert.False(t, c.CompleteFetch(genOld, oldPage, nil))

	state := c.Snapshot()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "u2", state.Items[0].ID)
}

func TestCompleteFetchRecordsError(t *testing.T) {
	c := userContainer()

	gen := c.BeginFetch()
	require.True(t, c.CompleteFetch(gen, nil, &models.APIError{Code: 4010, Message: "Phiên đã hết hạn"}))

	state := c.Snapshot()
	require.NotNil(t, state.LastError)
	assert.Equal(t, 4010, state.LastError.Code)
	assert.Empty(t, state.Items)

	c.ClearError()
	assert.Nil(t, c.Snapshot().LastError)
}

func TestCompleteFetchNormalizesTransportError(t *testing.T) {
	c := userContainer()

	gen := c.BeginFetch()
	require.True(t, c.CompleteFetch(gen, nil, errors.New("connection refused")))

	state := c.Snapshot()
	require.NotNil(t, state.LastError)
	assert.Equal(t, 0, state.LastError.Code)
	assert.Equal(t, "connection refused", state.LastError.Message)
}

func TestCompleteFetchRejectsBrokenPagination(t *testing.T) {
	c := userContainer()

	gen := c.BeginFetch()
	page := &models.Page[models.User]{
		Items: []models.User{{ID: "u1"}}, CurrentPage: 5, TotalPages: 2, TotalElements: 12, PageSize: 10,
	}
	require.True(t, c.CompleteFetch(gen, page, nil))

	state := c.Snapshot()
	require.NotNil(t, state.LastError)
	assert.Empty(t, state.Items)
}

func TestApplyCreateAppendsExactlyOnce(t *testing.T) {
	c := userContainer()
	gen := c.BeginFetch()
	require.True(t, c.CompleteFetch(gen, &models.Page[models.User]{
		Items: []models.User{{ID: "u1"}}, TotalPages: 1, TotalElements: 1, PageSize: 10,
	}, nil))

	c.ApplyCreate(models.User{ID: "u2", Username: "carol"})

	state := c.Snapshot()
	require.Len(t, state.Items, 2)
	assert.Equal(t, "u2", state.Items[1].ID)
	assert.Equal(t, int64(2), state.TotalElements)
}

func TestApplyUpdateReplacesOnlyMatchingID(t *testing.T) {
	c := userContainer()
	gen := c.BeginFetch()
	require.True(t, c.CompleteFetch(gen, &models.Page[models.User]{
		Items:         []models.User{{ID: "u1", Username: "alice"}, {ID: "u2", Username: "bob"}},
		TotalPages:    1,
		TotalElements: 2,
		PageSize:      10,
	}, nil))

	c.ApplyUpdate(models.User{ID: "u2", Username: "bobby"})

	state := c.Snapshot()
	require.Len(t, state.Items, 2)
	assert.Equal(t, "alice", state.Items[0].Username)
	assert.Equal(t, "bobby", state.Items[1].Username)
}

func TestApplyDeleteRemovesListedIDs(t *testing.T) {
	c := userContainer()
	gen := c.BeginFetch()
	require.True(t, c.CompleteFetch(gen, &models.Page[models.User]{
		Items:         []models.User{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}},
		TotalPages:    1,
		TotalElements: 3,
		PageSize:      10,
	}, nil))

	c.ApplyDelete("u1", "u3")

	state := c.Snapshot()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "u2", state.Items[0].ID)
	assert.Equal(t, int64(1), state.TotalElements)
}

func TestSnapshotIsACopy(t *testing.T) {
	c := userContainer()
	gen := c.BeginFetch()
	require.True(t, c.CompleteFetch(gen, &models.Page[models.User]{
		Items: []models.User{{ID: "u1", Username: "alice"}}, TotalPages: 1, TotalElements: 1, PageSize: 10,
	}, nil))

	state := c.Snapshot()
	state.Items[0].Username = "mutated"

	assert.Equal(t, "alice", c.Snapshot().Items[0].Username)
}
