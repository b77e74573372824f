package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen/advisor-dashboard/internal/platform/config"
)

func routerTestConfig() *config.Config {
	return &config.Config{
		App:  config.AppConfig{Name: "advisor-dashboard", Environment: "test", Version: "1.0.0"},
		Auth: config.AuthConfig{Header: config.DefaultAuthHeader},
		CORS: config.CORSConfig{
			AllowedOrigins:   []string{"http://localhost:5173"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
	}
}

// newTestRouter mounts the full middleware stack with only the probe routes
// and a stub /api/echo route.
func newTestRouter(t *testing.T, mutate func(*RouterConfig)) *gin.Engine {
	t.Helper()

	rc := NewDefaultRouterConfig(discardLogger(), routerTestConfig(), handlers.NewHealthHandler(nil, handlers.BuildInfo{}))
	if mutate != nil {
		mutate(&rc)
	}

	engine := gin.New()
	api := SetupRouter(engine, rc)
	api.GET("/echo", func(c *gin.Context) {
		_, deadline := c.Request.Context().Deadline()
		c.JSON(http.StatusOK, gin.H{
			"authenticated": middleware.IsAuthenticated(c),
			"deadline":      deadline,
		})
	})

	return engine
}

func send(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func TestNewDefaultRouterConfig(t *testing.T) {
	cfg := routerTestConfig()
	health := handlers.NewHealthHandler(nil, handlers.BuildInfo{})
	logger := discardLogger()

	rc := NewDefaultRouterConfig(logger, cfg, health)

	assert.Same(t, logger, rc.Logger)
	assert.Same(t, &cfg.App, rc.AppConfig)
	assert.Same(t, &cfg.Auth, rc.AuthConfig)
	assert.Same(t, &cfg.CORS, rc.CORSConfig)
	assert.Same(t, health, rc.HealthHandler)
	assert.Equal(t, DefaultRequestTimeout, rc.Timeout)
	assert.Nil(t, rc.ClientHandler)
	assert.Nil(t, rc.ModelPortfolioHandler)
	assert.Nil(t, rc.AnalyticsHandler)
	assert.Nil(t, rc.DoraHandler)
}

func TestSetupRouter_ProbesAndIDs(t *testing.T) {
	engine := newTestRouter(t, nil)

	w := send(engine, httptest.NewRequest(http.MethodGet, "/-/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderCorrelationID))

	registered := map[string]bool{}
	for _, r := range engine.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{"GET /-/live", "GET /-/ready", "GET /-/build", "GET /-/metrics"} {
		assert.True(t, registered[want], want)
	}

	assert.False(t, registered["GET /api/clients"], "nil handlers leave routes unregistered")
}

func TestSetupRouter_APIMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*RouterConfig)
		token        string
		wantAuth     bool
		wantDeadline bool
	}{
		{name: "no token is still served", wantDeadline: true},
		{name: "bearer token marks request", token: "Bearer advisor-1", wantAuth: true, wantDeadline: true},
		{
			name:   "timeout disabled",
			mutate: func(rc *RouterConfig) { rc.Timeout = 0 },
			token:  "Bearer advisor-1", wantAuth: true,
		},
		{
			name:   "auth check disabled",
			mutate: func(rc *RouterConfig) { rc.AuthConfig = nil },
			token:  "Bearer advisor-1", wantDeadline: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestRouter(t, tt.mutate)

			req := httptest.NewRequest(http.MethodGet, "/api/echo", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}

			w := send(engine, req)
			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Authenticated bool `json:"authenticated"`
				Deadline      bool `json:"deadline"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantAuth, body.Authenticated)
			assert.Equal(t, tt.wantDeadline, body.Deadline)
		})
	}
}

func TestSetupRouter_UnknownRoutes(t *testing.T) {
	engine := newTestRouter(t, nil)

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantErr  string
	}{
		{name: "unknown path", method: http.MethodGet, path: "/api/portfolios", wantCode: http.StatusNotFound, wantErr: dto.ErrorCodeNotFound},
		{name: "wrong method", method: http.MethodDelete, path: "/-/live", wantCode: http.StatusMethodNotAllowed, wantErr: dto.ErrorCodeMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := send(engine, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantCode, w.Code)

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantErr, body.Error.Code)
			assert.Equal(t, w.Header().Get(middleware.HeaderRequestID), body.TraceID)
		})
	}
}

func TestSetupRouter_CORS(t *testing.T) {
	engine := newTestRouter(t, nil)

	tests := []struct {
		name       string
		origin     string
		wantAllow  string
		wantStatus int
	}{
		{name: "dashboard origin", origin: "http://localhost:5173", wantAllow: "http://localhost:5173", wantStatus: http.StatusNoContent},
		{name: "foreign origin", origin: "https://evil.example", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/clients", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)

			w := send(engine, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllow, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	assert.Nil(t, corsMiddleware(nil))
	assert.Nil(t, corsMiddleware(&config.CORSConfig{}))
	assert.NotNil(t, corsMiddleware(&config.CORSConfig{AllowedOrigins: []string{"*"}, AllowCredentials: true}))
}

func TestSetupRouter_MinimalConfig(t *testing.T) {
	require.NotPanics(t, func() {
		SetupRouter(gin.New(), RouterConfig{Logger: discardLogger()})
	})
}
