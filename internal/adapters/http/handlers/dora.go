package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen/advisor-dashboard/internal/app/dora"
	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
)

// DoraHandler serves the assistant's chat and alert endpoints.
type DoraHandler struct {
	chat   *dora.Service
	alerts *dora.AlertService
}

// NewDoraHandler creates a DORA handler.
func NewDoraHandler(chat *dora.Service, alerts *dora.AlertService) *DoraHandler {
	return &DoraHandler{
		chat:   chat,
		alerts: alerts,
	}
}

// AlertsResponse is the body of GET /api/dora/alerts.
type AlertsResponse struct {
	Alerts []domain.Alert `json:"alerts"`
}

// Chat handles POST /api/dora/chat. Unrecognised or unanswerable messages
// still get a 200 with a fallback reply; only an empty message is a 400.
//
// @Summary Ask DORA
// @Tags dora
// @Accept json
// @Produce json
// @Success 200 {object} dora.ChatResult
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/dora/chat [post]
func (h *DoraHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	result, err := h.chat.Chat(c.Request.Context(), req.Message, req.ClientID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Alerts handles GET /api/dora/alerts, newest first.
func (h *DoraHandler) Alerts(c *gin.Context) {
	alerts, err := h.alerts.Alerts(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, AlertsResponse{Alerts: alerts})
}

// RegisterDoraRoutes registers assistant routes on the given router group.
func (h *DoraHandler) RegisterDoraRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/dora")
	group.POST("/chat", h.Chat)
	group.GET("/alerts", h.Alerts)
}
