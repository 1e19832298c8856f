package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/booknotesapp/booknotes-server/internal/api"
	"github.com/booknotesapp/booknotes-server/internal/config"
	"github.com/booknotesapp/booknotes-server/internal/logger"
	"github.com/booknotesapp/booknotes-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	bookService := do.MustInvoke[*service.BookService](i)
	suggestionService := do.MustInvoke[*service.SuggestionService](i)

	handler, err := api.NewServer(bookService, suggestionService, cfg.Static.Dir, log.Logger)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
