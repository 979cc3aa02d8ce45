// store/container.go
package store

import (
	"errors"
	"sync"

	"github.com/vinshop/admin_console/models"
)

// State is a point-in-time copy of a container for rendering: the entity list,
// the loading/error flags, and the pagination block exactly as the server sent
// it.
type State[T any] struct {
	Items         []T
	Loading       bool
	LastError     *models.APIError
	CurrentPage   int
	TotalPages    int
	TotalElements int64
	PageSize      int
}

// Container is the in-memory mirror of one entity's server state. All
// mutations go through its methods; nothing else writes to it. Concurrent
// operations are not coordinated beyond the lock: when two fetches race, the
// generation check keeps a superseded response from clobbering a newer one,
// and everything else is last-write-wins, which is acceptable for
// single-operator admin tooling.
type Container[T any] struct {
	mu   sync.RWMutex
	idOf func(T) string

	items         []T
	loading       bool
	lastErr       *models.APIError
	currentPage   int
	totalPages    int
	totalElements int64
	pageSize      int

	gen uint64
}

// NewContainer creates a container for entities identified by idOf.
func NewContainer[T any](idOf func(T) string) *Container[T] {
	return &Container[T]{idOf: idOf}
}

// BeginFetch marks the container loading and returns the fetch generation to
// hand back to CompleteFetch.
func (c *Container[T]) BeginFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.loading = true
	return c.gen
}

// CompleteFetch finishes the fetch started at gen. A response from a
// superseded fetch (or one whose context was cancelled on navigation) is
// discarded and reported false. On success the held list and pagination block
// are replaced wholesale; on failure the error is recorded for the UI.
func (c *Container[T]) CompleteFetch(gen uint64, page *models.Page[T], err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return false
	}
	c.loading = false

	if err != nil {
		c.lastErr = asAPIError(err)
		return true
	}
	if verr := page.Validate(); verr != nil {
		c.lastErr = &models.APIError{Code: 0, Message: "bad pagination block: " + verr.Error()}
		return true
	}

	c.lastErr = nil
	c.items = append([]T(nil), page.Items...)
	c.currentPage = page.CurrentPage
	c.totalPages = page.TotalPages
	c.totalElements = page.TotalElements
	c.pageSize = page.PageSize
	return true
}

// ApplyCreate appends the entity the server returned for a create.
func (c *Container[T]) ApplyCreate(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	c.totalElements++
}

// ApplyUpdate replaces the entity with the same id; all others are untouched.
func (c *Container[T]) ApplyUpdate(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.idOf(item)
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = item
			return
		}
	}
}

// ApplyDelete removes every entity whose id is in ids.
func (c *Container[T]) ApplyDelete(ids ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := make(map[string]bool, len(ids))
	for _, id := range ids {
		removed[id] = true
	}
	kept := c.items[:0]
	for _, item := range c.items {
		if !removed[c.idOf(item)] {
			kept = append(kept, item)
		} else {
			c.totalElements--
		}
	}
	c.items = kept
}

// Fail records an operation failure without touching the list.
func (c *Container[T]) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.lastErr = asAPIError(err)
}

// ClearError dismisses the recorded error.
func (c *Container[T]) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = nil
}

// Snapshot returns a copy of the container for rendering.
func (c *Container[T]) Snapshot() State[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return State[T]{
		Items:         append([]T(nil), c.items...),
		Loading:       c.loading,
		LastError:     c.lastErr,
		CurrentPage:   c.currentPage,
		TotalPages:    c.totalPages,
		TotalElements: c.totalElements,
		PageSize:      c.pageSize,
	}
}

// asAPIError normalizes any failure into the {code, message} shape the UI
// shows; transport and unexpected errors get code 0.
func asAPIError(err error) *models.APIError {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &models.APIError{Code: 0, Message: err.Error()}
}
