package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booknotesapp/booknotes-server/internal/metadata/openlibrary"
	"github.com/booknotesapp/booknotes-server/internal/service"
	"github.com/booknotesapp/booknotes-server/internal/store/sqlite"
)

// fakeSearcher stands in for the Open Library client.
type fakeSearcher struct {
	calls       int
	suggestions []openlibrary.Suggestion
	err         error
}

func (f *fakeSearcher) Search(_ context.Context, _ string) ([]openlibrary.Suggestion, error) {
	f.calls++
	return f.suggestions, f.err
}

// setupTestServer creates a server backed by a temp-dir SQLite store.
func setupTestServer(t *testing.T) (*Server, *fakeSearcher) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := sqlite.Open(dbPath, logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	upstream := &fakeSearcher{}

	bookService := service.NewBookService(s, logger)
	suggestionService := service.NewSuggestionService(upstream, logger)

	server, err := NewServer(bookService, suggestionService, "", logger)
	require.NoError(t, err)

	return server, upstream
}

// postForm performs a form POST against the router and returns the recorder.
func postForm(t *testing.T, server *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

// get performs a GET against the router.
func get(t *testing.T, server *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

// duneForm is the add form of the example scenario.
func duneForm() url.Values {
	return url.Values{
		"title":     {"Dune"},
		"author":    {"Frank Herbert"},
		"notes":     {"spice must flow"},
		"rating":    {"9"},
		"date_read": {"2024-01-01"},
	}
}

func TestHealthCheck(t *testing.T) {
	server, _ := setupTestServer(t)

	w := get(t, server, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestIndex_Empty(t *testing.T) {
	server, _ := setupTestServer(t)

	w := get(t, server, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "No notes yet")
}

func TestIndex_ListsBooksAndTop(t *testing.T) {
	server, _ := setupTestServer(t)
	require.Equal(t, http.StatusSeeOther, postForm(t, server, "/add", duneForm()).Code)

	w := get(t, server, "/")

	body := w.Body.String()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, "Dune")
	assert.Contains(t, body, "Frank Herbert")
	assert.Contains(t, body, "Current favorite")
}

func TestIndex_UnknownSortFallsBack(t *testing.T) {
	server, _ := setupTestServer(t)

	w := get(t, server, "/?sort=bogus")

	assert.Equal(t, http.StatusOK, w.Code)
}
