package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// RequestID is a Gin middleware that tags each request with a unique
// identifier for traceability across logs and clients.
//
// Behavior:
//   - Reuses an inbound "X-Request-ID" header when the caller supplies one.
//   - Otherwise generates a new UUID (v4).
//   - Stores the id in the Gin context under RequestIDKey and echoes it
//     back in the "X-Request-ID" response header.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID())
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}
