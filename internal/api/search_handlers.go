package api

import (
	"net/http"

	"github.com/booknotesapp/booknotes-server/internal/http/response"
	"github.com/booknotesapp/booknotes-server/internal/metadata/openlibrary"
)

// suggestionsResponse is the wire shape of the autocomplete endpoint.
type suggestionsResponse struct {
	Suggestions []openlibrary.Suggestion `json:"suggestions"`
}

// handleSearch returns autocomplete suggestions for the query.
// Always responds 200 with a (possibly empty) list; upstream failures
// are invisible to the caller.
// GET /search?q=
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	suggestions := s.suggestions.Suggest(r.Context(), r.URL.Query().Get("q"))

	response.Success(w, suggestionsResponse{Suggestions: suggestions}, s.logger)
}
