package providers

import (
	"github.com/samber/do/v2"

	"github.com/booknotesapp/booknotes-server/internal/config"
	"github.com/booknotesapp/booknotes-server/internal/logger"
	"github.com/booknotesapp/booknotes-server/internal/metadata/openlibrary"
)

// OpenLibraryClientHandle wraps the Open Library client with shutdown capability.
type OpenLibraryClientHandle struct {
	*openlibrary.Client
}

// Shutdown implements do.Shutdownable.
func (h *OpenLibraryClientHandle) Shutdown() error {
	h.Close()
	return nil
}

// ProvideOpenLibraryClient provides the Open Library search client.
func ProvideOpenLibraryClient(i do.Injector) (*OpenLibraryClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := openlibrary.NewClient(cfg.OpenLibrary.BaseURL, log.Logger)

	return &OpenLibraryClientHandle{Client: client}, nil
}
