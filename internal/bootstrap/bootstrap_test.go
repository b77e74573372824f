package bootstrap

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/advisor-dashboard/internal/platform/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(seed bool) *config.Config {
	return &config.Config{
		App:     config.AppConfig{Name: "advisor-dashboard", Version: "test", Environment: "test"},
		Auth:    config.AuthConfig{Header: "Authorization"},
		Storage: config.StorageConfig{Seed: seed},
	}
}

func build(t *testing.T, seed bool) (*App, *gin.Engine) {
	t.Helper()

	a, err := Build(context.Background(), testConfig(seed), slog.New(slog.NewTextHandler(io.Discard, nil)), Options{
		Clock:      func() time.Time { return time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC) },
		Registerer: prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	engine := gin.New()
	a.Mount(engine)

	return a, engine
}

func TestBuild_Seeded(t *testing.T) {
	a, engine := build(t, true)

	clients, err := a.Store.ListClients(context.Background())
	require.NoError(t, err)
	assert.Len(t, clients, 5)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/dora/chat", strings.NewReader(`{"message":"which clients are off track?"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Intent string `json:"intent"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "comparison_offtrack", body.Intent)
}

func TestBuild_Empty(t *testing.T) {
	a, engine := build(t, false)

	clients, err := a.Store.ListClients(context.Background())
	require.NoError(t, err)
	assert.Empty(t, clients)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/clients", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
