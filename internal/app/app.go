package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/api"
	"github.com/guttosm/stockpulse/internal/marketdata"
	"github.com/guttosm/stockpulse/internal/returns"
)

// providerPingTimeout bounds the readiness probe's upstream check.
const providerPingTimeout = 3 * time.Second

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the market data provider selected by configuration.
//   - Initializes the return calculation service.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to release resources (e.g., idle HTTP connections).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Build the quote provider
	// indirection for unit testing
	provider, err := providerOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize market data provider: %w", err)
	}

	// Initialize service layer (business logic)
	svc := returns.NewReturnService(provider)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	requestTimeout := time.Duration(cfg.Server.RequestTimeoutSeconds) * time.Second
	router := api.NewRouter(handler, requestTimeout)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(pingProvider(provider))
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		if closer, ok := provider.(interface{ CloseIdleConnections() }); ok {
			closer.CloseIdleConnections()
		}
	}

	return router, cleanup, nil
}

// pingProvider adapts a provider's context-aware Ping to the zero-argument
// check the health handler expects.
func pingProvider(p marketdata.Provider) func() error {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), providerPingTimeout)
		defer cancel()
		return p.Ping(ctx)
	}
}
