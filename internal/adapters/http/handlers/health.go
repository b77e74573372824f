// Package handlers serves the dashboard API: clients and goals, model
// portfolios, analytics, the DORA assistant, and the /-/ probes.
package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/advisor-dashboard/internal/ports"
)

// BuildInfo describes the running binary. The values come from ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo fills GoVersion from the runtime.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// HealthHandler serves the /-/ probe routes.
type HealthHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
	started   time.Time
}

// NewHealthHandler creates a probe handler. A nil registry reports ready.
func NewHealthHandler(registry ports.HealthRegistry, buildInfo BuildInfo) *HealthHandler {
	return &HealthHandler{
		registry:  registry,
		buildInfo: buildInfo,
		started:   time.Now(),
	}
}

type liveResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

type readyResponse struct {
	Status string                        `json:"status"`
	Checks map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Liveness answers 200 while the process serves HTTP. It checks nothing else.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, liveResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	})
}

// Readiness answers 200 when every registered check passes and 503 otherwise.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.registry == nil {
		c.JSON(http.StatusOK, readyResponse{Status: string(ports.HealthStatusHealthy)})
		return
	}

	result := h.registry.CheckAll(c.Request.Context())

	code := http.StatusOK
	if result.Status != ports.HealthStatusHealthy {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, readyResponse{Status: string(result.Status), Checks: result.Checks})
}

// Build answers with the BuildInfo.
func (h *HealthHandler) Build(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// RegisterHealthRoutes mounts live, ready, build and metrics on rg.
// Metrics come from the default Prometheus registry, which holds the DORA
// collectors.
func (h *HealthHandler) RegisterHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/live", h.Liveness)
	rg.GET("/ready", h.Readiness)
	rg.GET("/build", h.Build)
	rg.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterHealthRoutesOnEngine mounts the probe routes under /-/.
func (h *HealthHandler) RegisterHealthRoutesOnEngine(engine *gin.Engine) {
	h.RegisterHealthRoutes(engine.Group("/-"))
}
