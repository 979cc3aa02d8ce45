// store/revenue_store.go
package store

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/services"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "store").Logger()

// RevenueStore holds the per-collaborator revenue aggregates, keyed by
// collaborator id. There is no bulk endpoint, so Refresh fans the detail
// fetches out concurrently and merges whatever succeeded.
type RevenueStore struct {
	c   *Container[models.RevenueDetail]
	api *services.RevenueService
}

func (s *RevenueStore) State() State[models.RevenueDetail] { return s.c.Snapshot() }

// Refresh fetches the revenue detail of every listed collaborator. Each fetch
// runs in its own goroutine; results come back over a channel. Collaborators
// whose fetch failed are skipped and the first failure is recorded so the page
// can show a toast next to the rows that did load.
func (s *RevenueStore) Refresh(ctx context.Context, token string, collaborators []models.Collaborator) error {
	gen := s.c.BeginFetch()

	type result struct {
		detail *models.RevenueDetail
		err    error
	}
	ch := make(chan result, len(collaborators))

	for _, collab := range collaborators {
		go func(collab models.Collaborator) {
			detail, err := s.api.Detail(ctx, token, collab.ID)
			if err == nil && detail.CollaboratorName == "" {
				detail.CollaboratorName = collab.User.FullName()
			}
			ch <- result{detail: detail, err: err}
		}(collab)
	}

	details := make([]models.RevenueDetail, 0, len(collaborators))
	var firstErr error
	for range collaborators {
		res := <-ch
		if res.err != nil {
			logger.Warn().Err(res.err).Msg("revenue detail fetch failed")
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		details = append(details, *res.detail)
	}

	page := &models.Page[models.RevenueDetail]{
		Items:         details,
		TotalPages:    1,
		TotalElements: int64(len(details)),
		PageSize:      len(details),
	}
	s.c.CompleteFetch(gen, page, nil)
	if firstErr != nil {
		s.c.Fail(firstErr)
	}
	return firstErr
}

// Mine replaces the list with just the calling collaborator's aggregate.
func (s *RevenueStore) Mine(ctx context.Context, token string) error {
	gen := s.c.BeginFetch()
	detail, err := s.api.Mine(ctx, token)
	var page *models.Page[models.RevenueDetail]
	if err == nil {
		page = &models.Page[models.RevenueDetail]{
			Items:         []models.RevenueDetail{*detail},
			TotalPages:    1,
			TotalElements: 1,
			PageSize:      1,
		}
	}
	s.c.CompleteFetch(gen, page, err)
	return err
}
