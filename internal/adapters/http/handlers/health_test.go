package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/advisor-dashboard/internal/mocks"
	"github.com/jsamuelsen/advisor-dashboard/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func probeRouter(registry ports.HealthRegistry, info BuildInfo) *gin.Engine {
	router := gin.New()
	NewHealthHandler(registry, info).RegisterHealthRoutesOnEngine(router)

	return router
}

func probe(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	return w
}

func TestNewBuildInfo(t *testing.T) {
	t.Parallel()

	bi := NewBuildInfo("0.4.0", "9f1c2ab", "2026-03-02T08:00:00Z")

	assert.Equal(t, BuildInfo{
		Version:   "0.4.0",
		Commit:    "9f1c2ab",
		BuildTime: "2026-03-02T08:00:00Z",
		GoVersion: runtime.Version(),
	}, bi)
}

func TestHealthHandler_Liveness(t *testing.T) {
	t.Parallel()

	// The registry is never consulted; the mock fails the test if it is.
	w := probe(probeRouter(mocks.NewMockHealthRegistry(t), BuildInfo{}), "/-/live")

	require.Equal(t, http.StatusOK, w.Code)

	var body liveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.GreaterOrEqual(t, body.UptimeSeconds, int64(0))
}

func TestHealthHandler_Readiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		result     *ports.HealthResult
		wantCode   int
		wantStatus string
	}{
		{
			name: "store healthy",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{"memory-store": {Status: ports.HealthStatusHealthy}},
			},
			wantCode:   http.StatusOK,
			wantStatus: "healthy",
		},
		{
			name: "store unhealthy",
			result: &ports.HealthResult{
				Status: ports.HealthStatusUnhealthy,
				Checks: map[string]*ports.CheckResult{
					"memory-store": {Status: ports.HealthStatusUnhealthy, Message: "context canceled"},
				},
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.result).Once()

			w := probe(probeRouter(registry, BuildInfo{}), "/-/ready")

			assert.Equal(t, tt.wantCode, w.Code)

			var body readyResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Len(t, body.Checks, len(tt.result.Checks))
		})
	}
}

func TestHealthHandler_ReadinessWithoutRegistry(t *testing.T) {
	t.Parallel()

	w := probe(probeRouter(nil, BuildInfo{}), "/-/ready")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestHealthHandler_ReadinessWithMemoryStore(t *testing.T) {
	t.Parallel()

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(stubHealthy{}))

	w := probe(probeRouter(registry, BuildInfo{}), "/-/ready")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"memory-store"`)
}

type stubHealthy struct{}

func (stubHealthy) Name() string { return "memory-store" }

func (stubHealthy) Check(ctx context.Context) error { return ctx.Err() }

func TestHealthHandler_Build(t *testing.T) {
	t.Parallel()

	info := BuildInfo{Version: "1.2.3", Commit: "def456", BuildTime: "2026-02-01T12:00:00Z", GoVersion: "go1.25.7"}

	w := probe(probeRouter(nil, info), "/-/build")

	require.Equal(t, http.StatusOK, w.Code)

	var body BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, info, body)
}

func TestHealthHandler_Metrics(t *testing.T) {
	t.Parallel()

	w := probe(probeRouter(nil, BuildInfo{}), "/-/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
