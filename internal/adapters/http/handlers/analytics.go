package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen/advisor-dashboard/internal/app"
)

// AnalyticsHandler serves the dashboard's fund-weighted analytics.
type AnalyticsHandler struct {
	service *app.AnalyticsService
}

// NewAnalyticsHandler creates an analytics handler.
func NewAnalyticsHandler(service *app.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// RiskMetrics handles GET /api/clients/:id/risk-metrics.
func (h *AnalyticsHandler) RiskMetrics(c *gin.Context) {
	metrics, err := h.service.RiskMetrics(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// Insights handles GET /api/clients/:id/insights.
func (h *AnalyticsHandler) Insights(c *gin.Context) {
	insights, err := h.service.Insights(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// Drift handles GET /api/clients/:id/goals/:goalId/drift?modelPortfolioId=.
func (h *AnalyticsHandler) Drift(c *gin.Context) {
	report, err := h.service.Drift(c.Request.Context(), c.Param("id"), c.Param("goalId"), c.Query("modelPortfolioId"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// RegisterAnalyticsRoutes registers analytics routes on the given router group.
func (h *AnalyticsHandler) RegisterAnalyticsRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients/:id")
	clients.GET("/risk-metrics", h.RiskMetrics)
	clients.GET("/insights", h.Insights)
	clients.GET("/goals/:goalId/drift", h.Drift)
}
