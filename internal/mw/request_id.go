package mw

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the correlation ID in both directions.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the gin context key holding the ID.
	RequestIDKey = "request_id"
)

// RequestID reuses an inbound X-Request-ID or generates a new UUID, stores it
// on the gin context and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the ID set by RequestID, or "" if it did not run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
