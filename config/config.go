package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and market data provider details.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	SERVER_REQUEST_TIMEOUT_SECONDS=120
//	PROVIDER=yahoo
//	YAHOO_BASE_URL=https://query1.finance.yahoo.com
//	HTTP_PROXY_URL=
//	HTTP_USER_AGENT=Mozilla/5.0
//	HTTP_TIMEOUT_SECONDS=30
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Provider ProviderConfig // Market data provider settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port                  string // The TCP port the HTTP server will listen on (e.g., "8080")
	RequestTimeoutSeconds int    // Per-request deadline for non-streaming endpoints
}

// ProviderConfig defines the market data source and its HTTP client settings.
//
// Fields:
//   - Name: provider selector ("yahoo" or "mock").
//   - YahooBaseURL: base URL of the Yahoo Finance chart API.
//   - ProxyURL: optional outbound HTTP proxy for provider requests.
//   - UserAgent: User-Agent header sent to the provider (Yahoo rejects empty ones).
//   - HTTPTimeoutSeconds: timeout for a single provider HTTP request.
type ProviderConfig struct {
	Name               string
	YahooBaseURL       string
	ProxyURL           string
	UserAgent          string
	HTTPTimeoutSeconds int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() will
//     terminate the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_REQUEST_TIMEOUT_SECONDS", 120)

	viper.SetDefault("PROVIDER", "yahoo")
	viper.SetDefault("YAHOO_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("HTTP_PROXY_URL", "")
	viper.SetDefault("HTTP_USER_AGENT", "Mozilla/5.0")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port:                  viper.GetString("SERVER_PORT"),
			RequestTimeoutSeconds: viper.GetInt("SERVER_REQUEST_TIMEOUT_SECONDS"),
		},
		Provider: ProviderConfig{
			Name:               viper.GetString("PROVIDER"),
			YahooBaseURL:       viper.GetString("YAHOO_BASE_URL"),
			ProxyURL:           viper.GetString("HTTP_PROXY_URL"),
			UserAgent:          viper.GetString("HTTP_USER_AGENT"),
			HTTPTimeoutSeconds: viper.GetInt("HTTP_TIMEOUT_SECONDS"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing or invalid ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
//   - Rejects provider names other than "yahoo" and "mock".
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Server.RequestTimeoutSeconds <= 0 {
		missing = append(missing, "SERVER_REQUEST_TIMEOUT_SECONDS")
	}
	if AppConfig.Provider.Name == "" {
		missing = append(missing, "PROVIDER")
	}
	if AppConfig.Provider.YahooBaseURL == "" {
		missing = append(missing, "YAHOO_BASE_URL")
	}
	if AppConfig.Provider.HTTPTimeoutSeconds <= 0 {
		missing = append(missing, "HTTP_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("Missing or invalid required environment variables: %v\n", missing)
	}

	switch AppConfig.Provider.Name {
	case "yahoo", "mock":
	default:
		log.Fatalf("Invalid PROVIDER %q (expected \"yahoo\" or \"mock\")\n", AppConfig.Provider.Name)
	}
}
