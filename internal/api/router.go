package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/stockpulse/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Adds request timeout handling to the JSON and CSV endpoints; the SSE
//     stream endpoint runs without a deadline since large batches are
//     expected to exceed it and progress events keep the connection live.
//   - Mounts Swagger docs (/swagger/*any) and the embedded web UI (/).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//   - requestTimeout (time.Duration): Per-request deadline for non-streaming endpoints.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler, requestTimeout time.Duration) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// ─── Swagger & UI ─────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	registerUI(router)

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		timed := v1.Group("", timeoutMiddleware(requestTimeout))
		{
			timed.POST("/returns", handler.ComputeReturns)
			timed.GET("/returns/csv", handler.ExportCSV)
		}
		v1.GET("/returns/stream", handler.StreamReturns)
	}

	return router
}

// timeoutMiddleware bounds the request context; downstream provider calls
// inherit the deadline.
func timeoutMiddleware(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
