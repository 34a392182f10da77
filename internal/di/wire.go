//go:build wireinject
// +build wireinject

package di

import (
	"VibeFinance/pkg/config"
	"VibeFinance/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Infrastructure clients
		ProvideKafkaProducer,
		ProvideClickHouseClient,
		ProvideCache,

		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Repositories and upstream services
		ProvideJournal,
		ProvideSessionStore,
		ProvideNewsSource,
		ProvideMarketDataProvider,

		// Use cases
		ProvideQuoteSession,

		// HTTP
		ProvideRenderer,
		ProvideLimiter,
		ProvideHandlers,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
