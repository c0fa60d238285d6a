package app

import (
	"fmt"
	"time"

	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/marketdata"
)

// InitProvider builds the market data provider selected by configuration.
//
// Parameters:
//   - cfg (config.Config): The application configuration object containing provider settings.
//
// Behavior:
//   - "yahoo" (or empty) selects the Yahoo Finance chart API client, wired
//     with the configured base URL, proxy, user agent and HTTP timeout.
//   - "mock" selects the deterministic in-memory provider (useful for demos
//     and offline development).
//   - Any other name is rejected.
//
// Returns:
//   - marketdata.Provider: the constructed provider.
//   - error: if the configured provider name is unknown.
//
// Example usage:
//
//	provider, err := app.InitProvider(config.AppConfig)
//	if err != nil {
//	    log.Fatalf("failed to build provider: %v", err)
//	}
func InitProvider(cfg config.Config) (marketdata.Provider, error) {
	switch cfg.Provider.Name {
	case "yahoo", "":
		timeout := time.Duration(cfg.Provider.HTTPTimeoutSeconds) * time.Second
		return marketdata.NewYahooClient(
			cfg.Provider.YahooBaseURL,
			cfg.Provider.ProxyURL,
			cfg.Provider.UserAgent,
			timeout,
		), nil
	case "mock":
		return marketdata.NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown market data provider %q", cfg.Provider.Name)
	}
}

// providerOpener is an indirection used by InitializeApp; overridden in tests to avoid real clients.
var providerOpener = InitProvider
