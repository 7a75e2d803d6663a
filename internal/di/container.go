// Package di provides dependency injection configuration for the server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/princeofgodman/figma-jobeee/internal/config"
	"github.com/princeofgodman/figma-jobeee/internal/di/providers"
	"github.com/princeofgodman/figma-jobeee/internal/logger"
	"github.com/princeofgodman/figma-jobeee/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Catalog store and service
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideCatalogService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is running.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*service.CatalogService](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
