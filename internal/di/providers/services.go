package providers

import (
	"github.com/samber/do/v2"

	"github.com/booknotesapp/booknotes-server/internal/logger"
	"github.com/booknotesapp/booknotes-server/internal/service"
)

// ProvideBookService provides the book service.
func ProvideBookService(i do.Injector) (*service.BookService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookService(storeHandle.Store, log.Logger), nil
}

// ProvideSuggestionService provides the title autocomplete service.
func ProvideSuggestionService(i do.Injector) (*service.SuggestionService, error) {
	clientHandle := do.MustInvoke[*OpenLibraryClientHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSuggestionService(clientHandle.Client, log.Logger), nil
}
