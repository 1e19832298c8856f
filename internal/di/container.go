// Package di provides dependency injection configuration for the
// book-notes server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/booknotesapp/booknotes-server/internal/config"
	"github.com/booknotesapp/booknotes-server/internal/di/providers"
	"github.com/booknotesapp/booknotes-server/internal/logger"
	"github.com/booknotesapp/booknotes-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Metadata layer
	do.Provide(injector, providers.ProvideOpenLibraryClient)

	// Business services
	do.Provide(injector, providers.ProvideBookService)
	do.Provide(injector, providers.ProvideSuggestionService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services.
// This triggers lazy initialization of the full dependency graph.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.OpenLibraryClientHandle](injector)
	_ = do.MustInvoke[*service.BookService](injector)
	_ = do.MustInvoke[*service.SuggestionService](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
