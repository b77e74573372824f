// Package http is the dashboard's HTTP adapter: the gin engine, its router
// and the server lifecycle.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/advisor-dashboard/internal/platform/config"
)

// Server runs the gin engine behind an http.Server until its context ends.
type Server struct {
	engine          *gin.Engine
	srv             *http.Server
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// New creates a server for cfg. Request bodies larger than
// cfg.MaxRequestSize fail to read.
func New(cfg *config.ServerConfig, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(limitBody(cfg.MaxRequestSize))

	return &Server{
		engine: engine,
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           engine,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// Engine returns the gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run listens on Addr and serves until ctx is cancelled, then drains
// in-flight requests for at most the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig

	ln, err := lc.Listen(ctx, "tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("http server listen: %w", err)
	}

	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener. It takes ownership of ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.InfoContext(ctx, "http server listening",
			slog.String("addr", ln.Addr().String()),
			slog.Duration("write_timeout", s.srv.WriteTimeout),
		)

		if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		return s.shutdown(context.WithoutCancel(ctx))
	})

	return g.Wait()
}

func (s *Server) shutdown(ctx context.Context) error {
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)

		defer cancel()
	}

	s.logger.InfoContext(ctx, "draining http server", slog.Duration("timeout", s.shutdownTimeout))

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	s.logger.InfoContext(ctx, "http server stopped")

	return nil
}

func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
