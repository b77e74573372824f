package http

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/advisor-dashboard/internal/platform/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func serverConfig(port int) *config.ServerConfig {
	return &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 2 * time.Second,
		MaxRequestSize:  64,
	}
}

func TestServer_Addr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{host: "127.0.0.1", port: 8080, want: "127.0.0.1:8080"},
		{host: "0.0.0.0", port: 0, want: "0.0.0.0:0"},
		{host: "::1", port: 9000, want: "[::1]:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			cfg := serverConfig(tt.port)
			cfg.Host = tt.host

			assert.Equal(t, tt.want, New(cfg, discardLogger()).Addr())
		})
	}
}

func TestServer_ServeUntilCancelled(t *testing.T) {
	srv := New(serverConfig(0), discardLogger())
	srv.Engine().GET("/-/live", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/-/live")
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}

	_, err = http.Get("http://" + ln.Addr().String() + "/-/live")
	assert.Error(t, err, "listener should be closed")
}

func TestServer_DrainsInFlightRequest(t *testing.T) {
	srv := New(serverConfig(0), discardLogger())

	started := make(chan struct{})
	srv.Engine().GET("/api/dora/chat", func(c *gin.Context) {
		close(started)
		time.Sleep(100 * time.Millisecond)
		c.String(http.StatusOK, "answered")
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- srv.Serve(ctx, ln) }()

	type result struct {
		code int
		body string
		err  error
	}

	got := make(chan result, 1)

	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/api/dora/chat")
		if err != nil {
			got <- result{err: err}
			return
		}
		defer resp.Body.Close()

		b, _ := io.ReadAll(resp.Body)
		got <- result{code: resp.StatusCode, body: string(b)}
	}()

	<-started
	cancel()

	r := <-got
	require.NoError(t, r.err)
	assert.Equal(t, http.StatusOK, r.code)
	assert.Equal(t, "answered", r.body)
	require.NoError(t, <-done)
}

func TestServer_RunAddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer ln.Close()

	srv := New(serverConfig(ln.Addr().(*net.TCPAddr).Port), discardLogger())

	err = srv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server listen")
}

func TestServer_BodyLimit(t *testing.T) {
	srv := New(serverConfig(0), discardLogger())
	srv.Engine().POST("/api/clients", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}

		c.Status(http.StatusCreated)
	})

	tests := []struct {
		name string
		size int
		want int
	}{
		{name: "under limit", size: 32, want: http.StatusCreated},
		{name: "at limit", size: 64, want: http.StatusCreated},
		{name: "over limit", size: 65, want: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(strings.Repeat("x", tt.size)))

			srv.Engine().ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
