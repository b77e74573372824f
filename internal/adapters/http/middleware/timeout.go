package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Deadline bounds the request context by timeout. It never writes a response
// itself: the retriever delay and the store watch the context, and the
// resulting context.DeadlineExceeded is answered by dto.HandleError as 504
// TIMEOUT. A non-positive timeout leaves the context untouched.
func Deadline(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
