package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shardulsaptarshi/deadlines-website/internal/dto"
	"github.com/shardulsaptarshi/deadlines-website/internal/service"
)

type PlanHandler struct {
	svc *service.PlanService
}

func NewPlanHandler(svc *service.PlanService) *PlanHandler {
	return &PlanHandler{svc: svc}
}

// Get godoc
// @Summary      Get tomorrow's plan
// @Description  Returns an empty plan if none has ever been saved.
// @Tags         planner
// @Produce      json
// @Success      200  {object}  dto.PlanResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/planner/tomorrow [get]
func (h *PlanHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plan"})
		return
	}
	c.JSON(http.StatusOK, dto.NewPlanResponse(p))
}

// Save godoc
// @Summary      Save tomorrow's plan
// @Description  Upsert with full overwrite; omitted fields reset to empty.
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SavePlanRequest  true  "Plan body"
// @Success      200   {object}  dto.PlanResponse
// @Failure      500   {object}  map[string]string
// @Router       /api/planner/tomorrow [post]
func (h *PlanHandler) Save(c *gin.Context) {
	var req dto.SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.Save(c.Request.Context(), req.Content, req.SelectedDeadlines)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save plan"})
		return
	}
	c.JSON(http.StatusOK, dto.NewPlanResponse(p))
}
