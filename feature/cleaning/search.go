package cleaning

import (
	"context"
	"strings"
	"sync/atomic"

	"floorops/feature/cleaning/models"

	"go.uber.org/zap"
)

// Search looks up canonical product names for the name-mode sidebar. Requests
// are sequence-tagged per session: when a newer query arrives while an older
// one is still running, the older result comes back marked superseded and
// carries no names, so slow responses can never overwrite fresh ones.
func (s *Service) Search(ctx context.Context, id, query string) (*models.SearchResponse, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}

	entry.touch()
	seq := atomic.AddUint64(&entry.searchSeq, 1)
	resp := &models.SearchResponse{Seq: seq, Query: query, Names: []string{}}

	query = strings.TrimSpace(query)
	if query == "" {
		return resp, nil
	}

	names, err := s.store.SearchProductNames(ctx, query)
	if err != nil {
		// Search is advisory; an unavailable store means no suggestions.
		s.logger.Warn("Product name search failed",
			zap.String("session_id", id),
			zap.String("query", query),
			zap.Error(err),
		)
		return resp, nil
	}

	if atomic.LoadUint64(&entry.searchSeq) != seq {
		resp.Superseded = true
		return resp, nil
	}
	if names != nil {
		resp.Names = names
	}
	return resp, nil
}
