package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/marketdata"
)

// stubProvider satisfies marketdata.Provider without network access and
// records cleanup calls.
type stubProvider struct {
	pingErr error
	closed  int
}

var _ marketdata.Provider = (*stubProvider)(nil)

func (s *stubProvider) HourlyBars(ctx context.Context, symbol string, start, end time.Time) ([]models.Bar, error) {
	return nil, errors.New("no data in stub")
}

func (s *stubProvider) Ping(ctx context.Context) error { return s.pingErr }

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) CloseIdleConnections() { s.closed++ }

// TestInitProvider verifies provider selection by configured name.
func TestInitProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		wantName string
		wantErr  bool
	}{
		{name: "yahoo", provider: "yahoo", wantName: "yahoo"},
		{name: "empty name defaults to yahoo", provider: "", wantName: "yahoo"},
		{name: "mock", provider: "mock", wantName: "mock"},
		{name: "unknown name rejected", provider: "bloomberg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{Provider: config.ProviderConfig{
				Name:               tt.provider,
				HTTPTimeoutSeconds: 5,
			}}
			p, err := InitProvider(cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for provider %q", tt.provider)
				}
				return
			}
			if err != nil {
				t.Fatalf("InitProvider: %v", err)
			}
			if p.Name() != tt.wantName {
				t.Fatalf("provider name = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}

// TestInitializeApp_ProviderFailure ensures InitializeApp returns an error when
// the configured provider cannot be built.
func TestInitializeApp_ProviderFailure(t *testing.T) {
	// Backup and override global config
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Server:   config.ServerConfig{Port: "8080", RequestTimeoutSeconds: 30},
		Provider: config.ProviderConfig{Name: "bloomberg"},
	}

	r, cleanup, err := InitializeApp()
	if err == nil || r != nil || cleanup != nil {
		if cleanup != nil {
			cleanup()
		}
		t.Fatalf("expected error from InitializeApp with unknown provider")
	}
}

func TestInitializeApp_HappyPath(t *testing.T) {
	// Override opener to return a stub provider that pings successfully
	stub := &stubProvider{}

	oldOpener := providerOpener
	providerOpener = func(cfg config.Config) (marketdata.Provider, error) { return stub, nil }
	t.Cleanup(func() { providerOpener = oldOpener })

	oldCfg := config.AppConfig
	t.Cleanup(func() { config.AppConfig = oldCfg })
	config.AppConfig = config.Config{Server: config.ServerConfig{Port: "8080", RequestTimeoutSeconds: 30}}

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: err set or nil components")
	}

	// Hit health endpoints
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w.Code)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	router.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", w2.Code)
	}

	// Call cleanup and ensure it releases provider connections
	cleanup()
	if stub.closed != 1 {
		t.Fatalf("cleanup closed provider %d times, want 1", stub.closed)
	}
}

// TestInitializeApp_DegradedReadiness verifies that a failing provider ping
// turns the readiness probe to 503 while liveness stays green.
func TestInitializeApp_DegradedReadiness(t *testing.T) {
	stub := &stubProvider{pingErr: errors.New("upstream down")}

	oldOpener := providerOpener
	providerOpener = func(cfg config.Config) (marketdata.Provider, error) { return stub, nil }
	t.Cleanup(func() { providerOpener = oldOpener })

	oldCfg := config.AppConfig
	t.Cleanup(func() { config.AppConfig = oldCfg })
	config.AppConfig = config.Config{Server: config.ServerConfig{Port: "8080", RequestTimeoutSeconds: 30}}

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp: %v", err)
	}
	t.Cleanup(cleanup)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w.Code)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	router.ServeHTTP(w2, req2)
	if w2.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz status=%d, want 503", w2.Code)
	}
}
