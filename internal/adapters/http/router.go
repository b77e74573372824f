package http

import (
	"log/slog"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen/advisor-dashboard/internal/platform/config"
	"github.com/jsamuelsen/advisor-dashboard/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds every /api request.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains what SetupRouter needs. Nil handlers leave their
// routes unregistered.
type RouterConfig struct {
	Logger     *slog.Logger
	AppConfig  *config.AppConfig
	AuthConfig *config.AuthConfig
	CORSConfig *config.CORSConfig

	HealthHandler         *handlers.HealthHandler
	ClientHandler         *handlers.ClientHandler
	ModelPortfolioHandler *handlers.ModelPortfolioHandler
	AnalyticsHandler      *handlers.AnalyticsHandler
	DoraHandler           *handlers.DoraHandler

	// Timeout applies to /api routes only; zero disables it.
	Timeout time.Duration
}

// SetupRouter installs middleware and routes on engine. Global middleware
// order:
//  1. Recovery
//  2. ContextLogger
//  3. RequestID and CorrelationID
//  4. OpenTelemetry tracing, metrics and trace ID logging
//  5. Logging (skips /-/ probes)
//  6. CORS, when origins are configured
//
// Unknown routes and methods answer with the standard error envelope.
//
// Probes live under /-/ with no timeout. Business endpoints live under /api
// behind BearerWarning and the request timeout. The returned /api group
// accepts further routes.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) *gin.RouterGroup {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)

	if cfg.AppConfig != nil {
		engine.Use(telemetry.Middleware(cfg.AppConfig.Name)...)
	}

	engine.Use(middleware.Logging(cfg.Logger))

	if h := corsMiddleware(cfg.CORSConfig); h != nil {
		engine.Use(h)
	}

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group("/api")
	if cfg.AuthConfig != nil {
		api.Use(middleware.BearerWarning(cfg.AuthConfig, cfg.Logger))
	}

	if cfg.Timeout > 0 {
		api.Use(middleware.Deadline(cfg.Timeout))
	}

	setupAPIRoutes(api, cfg)

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) {
		dto.RespondWithCode(c, dto.ErrorCodeNotFound, "no route for "+c.Request.URL.Path)
	})
	engine.NoMethod(func(c *gin.Context) {
		dto.RespondWithCode(c, dto.ErrorCodeMethodNotAllowed, c.Request.Method+" is not allowed on "+c.Request.URL.Path)
	})

	return api
}

func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.ClientHandler != nil {
		cfg.ClientHandler.RegisterClientRoutes(rg)
	}

	if cfg.AnalyticsHandler != nil {
		cfg.AnalyticsHandler.RegisterAnalyticsRoutes(rg)
	}

	if cfg.ModelPortfolioHandler != nil {
		cfg.ModelPortfolioHandler.RegisterModelPortfolioRoutes(rg)
	}

	if cfg.DoraHandler != nil {
		cfg.DoraHandler.RegisterDoraRoutes(rg)
	}
}

// corsMiddleware returns nil when no origins are allowed. A "*" entry
// allows every origin; credentials are then never sent.
func corsMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	if cfg == nil || len(cfg.AllowedOrigins) == 0 {
		return nil
	}

	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID, middleware.HeaderCorrelationID},
		ExposeHeaders: []string{middleware.HeaderRequestID, middleware.HeaderCorrelationID, telemetry.HeaderTraceID},
		MaxAge:        cfg.MaxAge,
	}

	if slices.Contains(cfg.AllowedOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
		c.AllowCredentials = cfg.AllowCredentials
	}

	return cors.New(c)
}

// NewDefaultRouterConfig creates a RouterConfig from the loaded configuration
// with DefaultRequestTimeout. Handlers are filled in by the caller.
func NewDefaultRouterConfig(logger *slog.Logger, cfg *config.Config, healthHandler *handlers.HealthHandler) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		AuthConfig:    &cfg.Auth,
		CORSConfig:    &cfg.CORS,
		HealthHandler: healthHandler,
		Timeout:       DefaultRequestTimeout,
	}
}
