package api

import (
	"net/http"

	"github.com/booknotesapp/booknotes-server/internal/domain"
)

// indexData is the data contract of the list/home view.
type indexData struct {
	Books   []domain.Book
	TopBook *domain.Book
	Sort    domain.SortMode
	Error   string
}

// noteData is the data contract of the single-note view.
type noteData struct {
	Book  *domain.Book
	Error string
}

// renderIndex writes the list view. Template failures are logged; by
// then part of the page may already be on the wire.
func (s *Server) renderIndex(w http.ResponseWriter, data indexData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("Failed to execute index template", "error", err)
	}
}

// renderNote writes the single-note view.
func (s *Server) renderNote(w http.ResponseWriter, data noteData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.noteTmpl.Execute(w, data); err != nil {
		s.logger.Error("Failed to execute note template", "error", err)
	}
}
