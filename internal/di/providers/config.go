// Package providers contains DI provider functions for all services.
package providers

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/booknotesapp/booknotes-server/internal/config"
	"github.com/booknotesapp/booknotes-server/internal/logger"
)

// ProvideConfig loads and validates the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ProvideLogger creates the application logger from configuration.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	return log, nil
}
