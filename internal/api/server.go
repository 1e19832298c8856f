// Package api provides the HTTP server and handlers for the
// book-notes application.
package api

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/booknotesapp/booknotes-server/internal/http/response"
	"github.com/booknotesapp/booknotes-server/internal/service"
	"github.com/booknotesapp/booknotes-server/internal/validation"
)

//go:embed templates/*.html
var templates embed.FS

// Server holds dependencies for HTTP handlers.
type Server struct {
	books       *service.BookService
	suggestions *service.SuggestionService
	validator   *validation.Validator
	indexTmpl   *template.Template
	noteTmpl    *template.Template
	staticDir   string
	router      *chi.Mux
	logger      *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(books *service.BookService, suggestions *service.SuggestionService, staticDir string, logger *slog.Logger) (*Server, error) {
	indexTmpl, err := template.ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, err
	}
	noteTmpl, err := template.ParseFS(templates, "templates/note.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		books:       books,
		suggestions: suggestions,
		validator:   validation.New(),
		indexTmpl:   indexTmpl,
		noteTmpl:    noteTmpl,
		staticDir:   staticDir,
		router:      chi.NewRouter(),
		logger:      logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealthCheck)

	s.router.Get("/", s.handleIndex)
	s.router.Get("/search", s.handleSearch)
	s.router.Post("/add", s.handleAddBook)
	s.router.Get("/notes/{id}", s.handleViewNote)
	s.router.Post("/edit/{id}", s.handleEditNote)
	s.router.Post("/delete/{id}", s.handleDeleteNote)

	// Static assets, if the configured directory exists.
	if s.staticDir != "" {
		if info, err := os.Stat(s.staticDir); err == nil && info.IsDir() {
			fs := http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir)))
			s.router.Get("/static/*", fs.ServeHTTP)
		}
	}
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
