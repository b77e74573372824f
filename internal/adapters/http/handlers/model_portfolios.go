package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen/advisor-dashboard/internal/app"
	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
)

// ModelPortfolioHandler serves allocation template endpoints.
type ModelPortfolioHandler struct {
	service *app.ModelPortfolioService
}

// NewModelPortfolioHandler creates a model portfolio handler.
func NewModelPortfolioHandler(service *app.ModelPortfolioService) *ModelPortfolioHandler {
	return &ModelPortfolioHandler{service: service}
}

// List handles GET /api/model-portfolios.
func (h *ModelPortfolioHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ListByRisk handles GET /api/model-portfolios/risk/:riskProfile.
func (h *ModelPortfolioHandler) ListByRisk(c *gin.Context) {
	list, err := h.service.ListByRisk(c.Request.Context(), domain.RiskProfile(c.Param("riskProfile")))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Get handles GET /api/model-portfolios/:id.
func (h *ModelPortfolioHandler) Get(c *gin.Context) {
	mp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, mp)
}

// Create handles POST /api/model-portfolios. Weights other than exactly 100
// are rejected with 400.
//
// @Summary Create a model portfolio
// @Tags model-portfolios
// @Accept json
// @Produce json
// @Success 201 {object} domain.ModelPortfolio
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/model-portfolios [post]
func (h *ModelPortfolioHandler) Create(c *gin.Context) {
	var req ModelPortfolioRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	mp, err := h.service.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mp)
}

// Update handles PATCH /api/model-portfolios/:id.
func (h *ModelPortfolioHandler) Update(c *gin.Context) {
	var req UpdateModelPortfolioRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	mp, err := h.service.Update(c.Request.Context(), c.Param("id"), req.toPatch())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, mp)
}

// Delete handles DELETE /api/model-portfolios/:id.
func (h *ModelPortfolioHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterModelPortfolioRoutes registers model portfolio routes on the given router group.
func (h *ModelPortfolioHandler) RegisterModelPortfolioRoutes(rg *gin.RouterGroup) {
	models := rg.Group("/model-portfolios")
	models.GET("", h.List)
	models.POST("", h.Create)
	models.GET("/risk/:riskProfile", h.ListByRisk)
	models.GET("/:id", h.Get)
	models.PATCH("/:id", h.Update)
	models.DELETE("/:id", h.Delete)
}
