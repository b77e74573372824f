// Package bootstrap assembles the dashboard from its configuration: the
// store, the services, the handlers and the router config.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	httpadapter "github.com/jsamuelsen/advisor-dashboard/internal/adapters/http"
	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/memory"
	"github.com/jsamuelsen/advisor-dashboard/internal/app"
	"github.com/jsamuelsen/advisor-dashboard/internal/app/dora"
	"github.com/jsamuelsen/advisor-dashboard/internal/platform/config"
	"github.com/jsamuelsen/advisor-dashboard/internal/ports"
)

// Options overrides process-wide defaults. The zero value uses the wall
// clock and the default Prometheus registerer.
type Options struct {
	Clock      ports.Clock
	Registerer prometheus.Registerer
	BuildInfo  handlers.BuildInfo
}

// App is a fully wired dashboard ready to be mounted on an engine.
type App struct {
	Store  *memory.Store
	Health *ports.Registry
	Chat   *dora.Service
	Router httpadapter.RouterConfig
}

// Build wires every component. The store is seeded when cfg.Storage.Seed is set.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*App, error) {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	reg := opts.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	store := memory.NewStore()
	if cfg.Storage.Seed {
		if err := memory.Seed(ctx, store, clock()); err != nil {
			return nil, fmt.Errorf("seeding store: %w", err)
		}

		logger.InfoContext(ctx, "seeded demo advisor book")
	}

	health := ports.NewHealthRegistry()
	if err := health.Register(store); err != nil {
		return nil, fmt.Errorf("registering store health check: %w", err)
	}

	metrics := dora.NewMetrics(reg)

	chat, err := dora.NewService(dora.ServiceConfig{
		Clients: store,
		Retriever: dora.NewRetriever(dora.RetrieverConfig{
			Delay:   cfg.Dora.RetrievalDelay,
			Metrics: metrics,
		}),
		Clock:   clock,
		Metrics: metrics,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating assistant: %w", err)
	}

	clients := app.NewClientService(app.ClientServiceConfig{Repository: store, Clock: clock, Logger: logger})
	models := app.NewModelPortfolioService(app.ModelPortfolioServiceConfig{Repository: store, Clock: clock, Logger: logger})

	router := httpadapter.NewDefaultRouterConfig(logger, cfg, handlers.NewHealthHandler(health, opts.BuildInfo))
	router.ClientHandler = handlers.NewClientHandler(clients, app.NewRebalanceService(store, store, clock, logger))
	router.ModelPortfolioHandler = handlers.NewModelPortfolioHandler(models)
	router.AnalyticsHandler = handlers.NewAnalyticsHandler(app.NewAnalyticsService(store, store, logger))
	router.DoraHandler = handlers.NewDoraHandler(chat, dora.NewAlertService(store, clock, logger))

	return &App{
		Store:  store,
		Health: health,
		Chat:   chat,
		Router: router,
	}, nil
}

// Mount installs the middleware stack and every route on engine.
func (a *App) Mount(engine *gin.Engine) {
	httpadapter.SetupRouter(engine, a.Router)
}
