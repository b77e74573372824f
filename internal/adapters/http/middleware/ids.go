// Package middleware holds the gin middleware of the dashboard API: request
// and correlation ids, request logging, recovery, timeouts and the bearer
// token warning.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/advisor-dashboard/internal/platform/logging"
)

const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"

	// Gin context keys holding the ids. ContextKeyRequestID is also read by
	// dto.GetTraceID.
	ContextKeyRequestID     = "request_id"
	ContextKeyCorrelationID = "correlation_id"

	maxIDLength = 128
)

// RequestID takes X-Request-ID from the request or generates a UUID. The id
// is echoed in the response, stored under ContextKeyRequestID and added to
// the request logger.
func RequestID() gin.HandlerFunc {
	return propagateID(HeaderRequestID, ContextKeyRequestID, logging.WithRequestID)
}

// CorrelationID does the same for X-Correlation-ID. The dashboard sends one
// per chat session so a conversation can be followed across requests.
func CorrelationID() gin.HandlerFunc {
	return propagateID(HeaderCorrelationID, ContextKeyCorrelationID, logging.WithCorrelationID)
}

func propagateID(header, key string, enrich func(context.Context, string) context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(header)
		if !validID(id) {
			id = uuid.NewString()
		}

		c.Set(key, id)
		c.Header(header, id)
		c.Request = c.Request.WithContext(enrich(c.Request.Context(), id))

		c.Next()
	}
}

// validID accepts short ids made of URL-safe characters. Anything else is
// replaced so that caller input never reaches log lines unchecked.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}

	return true
}
