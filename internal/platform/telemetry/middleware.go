package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/advisor-dashboard/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/advisor-dashboard/telemetry"

	// HeaderTraceID carries the active trace ID back to the caller.
	HeaderTraceID = "X-Trace-ID"

	unmatchedRoute = "unmatched"
)

// Metrics holds HTTP server instruments.
type Metrics struct {
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
	activeRequests  metric.Int64UpDownCounter
}

// NewMetrics creates HTTP server instruments on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	requestTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		activeRequests:  activeRequests,
	}, nil
}

// Middleware returns the otelgin tracing handler followed by Instrument.
// Install it after ContextLogger so the trace ID reaches the request logger.
func Middleware(serviceName string) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		otelgin.Middleware(serviceName),
		Instrument(),
	}
}

// Instrument records request metrics, echoes the trace ID in X-Trace-ID and
// adds it to the request logger. Instrument creation errors go to the global
// otel error handler and the handler keeps serving without metrics.
func Instrument() gin.HandlerFunc {
	metrics, err := NewMetrics()
	if err != nil {
		otel.Handle(err)
		metrics = nil
	}

	return func(c *gin.Context) {
		start := time.Now()
		ctx := c.Request.Context()

		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.HasTraceID() {
			traceID := sc.TraceID().String()
			c.Header(HeaderTraceID, traceID)
			c.Set("trace_id", traceID)
			ctx = logging.WithTraceID(ctx, traceID)
			c.Request = c.Request.WithContext(ctx)
		}

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		if metrics == nil {
			c.Next()
			return
		}

		active := metric.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
		)

		metrics.activeRequests.Add(ctx, 1, active)
		defer metrics.activeRequests.Add(ctx, -1, active)

		c.Next()

		done := metric.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.Int("http.status_code", c.Writer.Status()),
		)
		metrics.requestDuration.Record(ctx, time.Since(start).Seconds(), done)
		metrics.requestTotal.Add(ctx, 1, done)
	}
}
