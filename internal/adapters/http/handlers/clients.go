package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen/advisor-dashboard/internal/app"
	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
)

// ClientHandler serves client, goal and meeting note endpoints.
type ClientHandler struct {
	clients   *app.ClientService
	rebalance *app.RebalanceService
}

// NewClientHandler creates a client handler.
func NewClientHandler(clients *app.ClientService, rebalance *app.RebalanceService) *ClientHandler {
	return &ClientHandler{
		clients:   clients,
		rebalance: rebalance,
	}
}

// ListClients handles GET /api/clients.
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clients.ListClients(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient handles GET /api/clients/:id.
//
// @Summary Get a client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} domain.Client
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.clients.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// CreateClient handles POST /api/clients. The response carries the
// server-assigned client and goal ids.
//
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Success 201 {object} domain.Client
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	draft, err := req.toDomain()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	client, err := h.clients.CreateClient(c.Request.Context(), draft)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

// UpdateClient handles PATCH /api/clients/:id.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var req UpdateClientRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	client, err := h.clients.UpdateClient(c.Request.Context(), c.Param("id"), req.toPatch())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient handles DELETE /api/clients/:id.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.clients.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddGoal handles POST /api/clients/:id/goals.
func (h *ClientHandler) AddGoal(c *gin.Context) {
	var req GoalRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	draft, err := req.toDomain()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	goal, err := h.clients.AddGoal(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// UpdateGoal handles PATCH /api/clients/:id/goals/:goalId.
func (h *ClientHandler) UpdateGoal(c *gin.Context) {
	var req UpdateGoalRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	goal, err := h.clients.UpdateGoal(c.Request.Context(), c.Param("id"), c.Param("goalId"), req.toPatch())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// DeleteGoal handles DELETE /api/clients/:id/goals/:goalId.
func (h *ClientHandler) DeleteGoal(c *gin.Context) {
	if err := h.clients.DeleteGoal(c.Request.Context(), c.Param("id"), c.Param("goalId")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddMeetingNote handles POST /api/clients/:id/notes.
func (h *ClientHandler) AddMeetingNote(c *gin.Context) {
	var req MeetingNoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	note, err := h.clients.AddMeetingNote(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

// ListMeetingNotes handles GET /api/clients/:id/notes?limit=&cursor=,
// newest first.
func (h *ClientHandler) ListMeetingNotes(c *gin.Context) {
	var req dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	var afterID string

	cursor, err := req.DecodeCursor()

	switch {
	case errors.Is(err, dto.ErrNoCursor):
	case err != nil:
		dto.RespondWithCode(c, dto.ErrorCodeBadRequest, "cursor is malformed")
		return
	default:
		afterID = cursor.ID
	}

	limit := req.GetLimit()

	notes, err := h.clients.ListMeetingNotes(c.Request.Context(), c.Param("id"), afterID, limit)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(notes, limit, func(n domain.MeetingNote) *dto.CursorData {
		return dto.NewCursor("date", n.Date.Format(time.RFC3339), n.ID)
	}))
}

// ApplyModel handles POST /api/clients/:id/goals/:goalId/apply-model.
// The goal takes the model's funds and the change is logged as a meeting note.
func (h *ClientHandler) ApplyModel(c *gin.Context) {
	var req ApplyModelRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	goal, err := h.rebalance.ApplyModel(c.Request.Context(), c.Param("id"), c.Param("goalId"), req.ModelPortfolioID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// RegisterClientRoutes registers client routes on the given router group.
func (h *ClientHandler) RegisterClientRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	clients.GET("", h.ListClients)
	clients.POST("", h.CreateClient)
	clients.GET("/:id", h.GetClient)
	clients.PATCH("/:id", h.UpdateClient)
	clients.DELETE("/:id", h.DeleteClient)

	clients.POST("/:id/goals", h.AddGoal)
	clients.PATCH("/:id/goals/:goalId", h.UpdateGoal)
	clients.DELETE("/:id/goals/:goalId", h.DeleteGoal)
	clients.GET("/:id/notes", h.ListMeetingNotes)
	clients.POST("/:id/notes", h.AddMeetingNote)

	if h.rebalance != nil {
		clients.POST("/:id/goals/:goalId/apply-model", h.ApplyModel)
	}
}
