package dto

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
	"github.com/jsamuelsen/advisor-dashboard/internal/platform/logging"
)

// Gin context keys read by GetTraceID. requestIDKey matches
// middleware.ContextKeyRequestID.
const (
	traceIDKey   = "trace_id"
	requestIDKey = "request_id"
)

// GetTraceID returns the identifier echoed in error envelopes. It prefers a
// value set on the gin context, then the active span, then the request id
// assigned by the RequestID middleware, then X-Request-ID.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(traceIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}

		return ""
	}

	if c.Request == nil {
		return ""
	}

	if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	if id := c.GetString(requestIDKey); id != "" {
		return id
	}

	return c.Request.Header.Get("X-Request-ID")
}

// MapError maps an error to an HTTP status and error envelope. Unknown errors
// become a 500 with a generic message.
func MapError(err error) (int, *ErrorResponse) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, NewErrorResponseWithDetails(
			ErrorCodeValidation,
			validationErr.Error(),
			validationErr.FieldErrors(),
		)

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "request timed out")

	default:
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}

// HandleError writes the error envelope for err. Internal errors are logged
// with the request logger.
func HandleError(c *gin.Context, err error) {
	status, resp := MapError(err)
	resp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			"error", err.Error(),
			"trace_id", resp.TraceID,
		)
	}

	c.JSON(status, resp)
}

// RespondWithCode writes an adapter-level error such as a malformed body.
func RespondWithCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// RespondWithBindingError writes a 400 for a body that failed to bind or
// failed its struct tags.
func RespondWithBindingError(c *gin.Context, err error) {
	if IsValidationError(err) {
		c.JSON(http.StatusBadRequest, NewErrorResponseWithDetails(
			ErrorCodeValidation,
			"request validation failed",
			ValidationErrors(err),
		).WithTraceID(GetTraceID(c)))

		return
	}

	RespondWithCode(c, ErrorCodeBadRequest, "request body is malformed")
}
