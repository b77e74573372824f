package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/advisor-dashboard/internal/platform/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestConfigFrom(t *testing.T) {
	tests := []struct {
		name     string
		service  string
		wantName string
	}{
		{name: "explicit service name", service: "dora-api", wantName: "dora-api"},
		{name: "falls back to app name", service: "", wantName: "advisor-dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				App: config.AppConfig{Name: "advisor-dashboard", Version: "1.4.0", Environment: "qa"},
				Telemetry: config.TelemetryConfig{
					Enabled:      true,
					Endpoint:     "http://collector:4317",
					ServiceName:  tt.service,
					SamplingRate: 0.25,
				},
			}

			got := ConfigFrom(cfg)

			assert.Equal(t, &Config{
				Enabled:      true,
				Endpoint:     "http://collector:4317",
				ServiceName:  tt.wantName,
				Version:      "1.4.0",
				Environment:  "qa",
				SamplingRate: 0.25,
			}, got)
		})
	}
}

func TestNew_Disabled(t *testing.T) {
	p, err := New(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestProvider_ShutdownRunsNewestFirst(t *testing.T) {
	var order []string

	record := func(name string, err error) func(context.Context) error {
		return func(context.Context) error {
			order = append(order, name)
			return err
		}
	}

	p := &Provider{shutdowns: []func(context.Context) error{
		record("tracer", nil),
		record("meter", assert.AnError),
	}}

	err := p.Shutdown(context.Background())

	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, []string{"meter", "tracer"}, order)
}

func TestInstrument_EchoesTraceID(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	var (
		fromGin   string
		wantTrace string
	)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		ctx, span := tp.Tracer("test").Start(c.Request.Context(), "request")
		defer span.End()

		wantTrace = span.SpanContext().TraceID().String()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	router.Use(Instrument())
	router.GET("/api/dora/alerts", func(c *gin.Context) {
		fromGin = c.GetString("trace_id")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dora/alerts", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, wantTrace)
	assert.Equal(t, wantTrace, w.Header().Get(HeaderTraceID))
	assert.Equal(t, wantTrace, fromGin)
}

func TestInstrument_NoSpan(t *testing.T) {
	router := gin.New()
	router.Use(Instrument())
	router.GET("/", func(c *gin.Context) {
		assert.False(t, trace.SpanContextFromContext(c.Request.Context()).IsValid())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get(HeaderTraceID))
}
