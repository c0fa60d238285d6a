package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockpulse/internal/domain/dto"
)

type providerErr struct{}

func (providerErr) Error() string { return "quote provider unreachable" }

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body is not an error response: %v (%s)", err, w.Body.String())
	}
	return resp
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.POST("/api/v1/returns", func(c *gin.Context) { _ = c.Error(providerErr{}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/returns", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code=%d", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Message != "Internal server error" {
		t.Fatalf("message: %q", resp.Message)
	}
	if !strings.Contains(resp.ErrorDetails, "quote provider unreachable") {
		t.Fatalf("details: %q", resp.ErrorDetails)
	}
}

func TestErrorHandler_NoErrorsPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("response rewritten: %d %q", w.Code, w.Body.String())
	}
}

func TestErrorHandler_KeepsWrittenResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/api/v1/returns/csv", func(c *gin.Context) {
		c.String(http.StatusBadGateway, "upstream said no")
		_ = c.Error(providerErr{})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/returns/csv", nil))

	// The handler already replied; the middleware must only log.
	if w.Code != http.StatusBadGateway || w.Body.String() != "upstream said no" {
		t.Fatalf("response rewritten: %d %q", w.Code, w.Body.String())
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.POST("/api/v1/returns", func(c *gin.Context) { panic("nil bar slice") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/returns", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code=%d", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Message != "Internal server error" || !strings.Contains(resp.ErrorDetails, "nil bar slice") {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestRateLimiter(t *testing.T) {
	cases := []struct {
		name   string
		reqs   int
		lim    int
		expect int
	}{
		{name: "within limit", reqs: 2, lim: 3, expect: http.StatusOK},
		{name: "exceed limit", reqs: 5, lim: 3, expect: http.StatusTooManyRequests},
		{name: "exactly at limit", reqs: 3, lim: 3, expect: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)

			// All httptest requests share one client IP, so each case
			// starts from a clean slate.
			clients = make(map[string]*client)
			window = 100 * time.Millisecond
			limit = tc.lim
			t.Cleanup(func() {
				clients = make(map[string]*client)
				window = time.Minute
				limit = 60
			})

			r := gin.New()
			r.Use(RateLimiter())
			r.GET("/api/v1/returns/stream", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

			var last *httptest.ResponseRecorder
			for i := 0; i < tc.reqs; i++ {
				last = httptest.NewRecorder()
				r.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/api/v1/returns/stream", nil))
			}
			if last.Code != tc.expect {
				t.Fatalf("expected %d, got %d", tc.expect, last.Code)
			}
			if tc.expect == http.StatusTooManyRequests && !strings.Contains(last.Body.String(), "rate limit exceeded") {
				t.Fatalf("429 body: %q", last.Body.String())
			}
		})
	}
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clients = make(map[string]*client)
	window = 50 * time.Millisecond
	limit = 1
	t.Cleanup(func() {
		clients = make(map[string]*client)
		window = time.Minute
		limit = 60
	})

	r := gin.New()
	r.Use(RateLimiter())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	if first.Code != http.StatusOK || second.Code != http.StatusTooManyRequests {
		t.Fatalf("codes: %d then %d", first.Code, second.Code)
	}

	time.Sleep(2 * window)
	third := httptest.NewRecorder()
	r.ServeHTTP(third, httptest.NewRequest(http.MethodGet, "/", nil))
	if third.Code != http.StatusOK {
		t.Fatalf("window did not reset: %d", third.Code)
	}
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/returns", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD", providerErr{})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/returns", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Message != "invalid date format, expected YYYY-MM-DD" {
		t.Fatalf("message: %q", resp.Message)
	}
	if resp.ErrorDetails != "quote provider unreachable" {
		t.Fatalf("details: %q", resp.ErrorDetails)
	}
	if resp.Timestamp.IsZero() {
		t.Fatalf("timestamp not set")
	}
}

func TestAbortWithError_NilInner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/returns/csv", func(c *gin.Context) {
		AbortWithError(c, http.StatusNotFound, "no results to export", nil)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/returns/csv", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("code=%d", w.Code)
	}
	if resp := decodeError(t, w); resp.ErrorDetails != "" {
		t.Fatalf("nil inner error must omit details, got %q", resp.ErrorDetails)
	}
}
