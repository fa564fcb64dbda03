package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextKeyRequestID is the key for the request id in gin context
	ContextKeyRequestID = "request_id"
	// HeaderRequestID is the request id response header
	HeaderRequestID = "X-Request-ID"
)

// RequestIDMiddleware assigns each request a uuid, honoring an inbound
// X-Request-ID when the client supplies one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ContextKeyRequestID, requestID)
		c.Writer.Header().Set(HeaderRequestID, requestID)

		c.Next()
	}
}

// RequestID gets the request id from the gin context
func RequestID(c *gin.Context) string {
	value, exists := c.Get(ContextKeyRequestID)
	if !exists {
		return ""
	}
	id, ok := value.(string)
	if !ok {
		return ""
	}
	return id
}
