package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/booknotesapp/booknotes-server/internal/metadata/openlibrary"
)

// minQueryLength is the shortest trimmed query that triggers an
// upstream search.
const minQueryLength = 2

// Searcher is the upstream suggestion source.
type Searcher interface {
	Search(ctx context.Context, query string) ([]openlibrary.Suggestion, error)
}

// SuggestionService proxies the Open Library search API for the
// autocomplete box. Suggestions are best-effort enrichment: every
// failure is downgraded to an empty list so the browser never sees an
// upstream error.
type SuggestionService struct {
	client Searcher
	logger *slog.Logger
}

// NewSuggestionService creates a new suggestion service.
func NewSuggestionService(client Searcher, logger *slog.Logger) *SuggestionService {
	return &SuggestionService{
		client: client,
		logger: logger,
	}
}

// Suggest returns at most openlibrary.MaxSuggestions suggestions for
// the query. Queries shorter than two characters after trimming return
// an empty list without any upstream call.
func (s *SuggestionService) Suggest(ctx context.Context, query string) []openlibrary.Suggestion {
	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		return []openlibrary.Suggestion{}
	}

	suggestions, err := s.client.Search(ctx, query)
	if err != nil {
		s.logger.Warn("Open Library search failed", "error", err, "query", query)
		return []openlibrary.Suggestion{}
	}
	if suggestions == nil {
		suggestions = []openlibrary.Suggestion{}
	}
	return suggestions
}
