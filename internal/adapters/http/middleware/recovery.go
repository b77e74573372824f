package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen/advisor-dashboard/internal/platform/logging"
)

// Recovery answers a panicking handler with a 500 INTERNAL_ERROR envelope and
// logs the panic with its stack. Register it first so it also covers the
// other middleware.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			ctx := c.Request.Context()
			traceID := dto.GetTraceID(c)

			logging.FromContextOr(ctx, logger).ErrorContext(ctx, "handler panicked",
				slog.String("panic", fmt.Sprint(r)),
				slog.String("route", c.FullPath()),
				slog.String("method", c.Request.Method),
				slog.String("trace_id", traceID),
				slog.String("stack", string(debug.Stack())),
			)

			// Headers already sent; the client sees a truncated body.
			if c.Writer.Written() {
				c.Abort()
				return
			}

			dto.RespondWithCode(c, dto.ErrorCodeInternal, "an internal error occurred")
			c.Abort()
		}()

		c.Next()
	}
}
