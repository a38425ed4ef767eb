package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shardulsaptarshi/deadlines-website/internal/dto"
	"github.com/shardulsaptarshi/deadlines-website/internal/service"
)

type DeadlineHandler struct {
	svc *service.DeadlineService
	now func() time.Time
}

func NewDeadlineHandler(svc *service.DeadlineService) *DeadlineHandler {
	// Status is evaluated against the UTC calendar day: due dates are stored
	// as midnight UTC, so a local clock must not shift the frame.
	return &DeadlineHandler{svc: svc, now: func() time.Time { return time.Now().UTC() }}
}

// List godoc
// @Summary      List all deadlines sorted by due date
// @Tags         deadlines
// @Produce      json
// @Success      200  {array}   dto.DeadlineResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/deadlines [get]
func (h *DeadlineHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deadlines"})
		return
	}
	c.JSON(http.StatusOK, dto.NewDeadlineResponses(list, h.now()))
}

// GetByID godoc
// @Summary      Get a deadline by ID
// @Tags         deadlines
// @Produce      json
// @Param        id   path      string  true  "Deadline ID"
// @Success      200  {object}  dto.DeadlineResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/deadlines/{id} [get]
func (h *DeadlineHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	d, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deadline not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deadline"})
		return
	}
	c.JSON(http.StatusOK, dto.NewDeadlineResponse(d, h.now()))
}

// Create godoc
// @Summary      Create a deadline
// @Tags         deadlines
// @Accept       json
// @Produce      json
// @Param        body  body      dto.DeadlineRequest  true  "Deadline body"
// @Success      201   {object}  dto.DeadlineResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/deadlines [post]
func (h *DeadlineHandler) Create(c *gin.Context) {
	var req dto.DeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and due date are required"})
		return
	}
	d, err := h.svc.Create(c.Request.Context(), req.Title, req.Description, req.DueDate.Ptr(), req.DueTime)
	if err != nil {
		writeMutationError(c, err, "Failed to create deadline")
		return
	}
	c.JSON(http.StatusCreated, dto.NewDeadlineResponse(d, h.now()))
}

// Update godoc
// @Summary      Replace a deadline's fields
// @Tags         deadlines
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Deadline ID"
// @Param        body  body      dto.DeadlineRequest  true  "Full replacement"
// @Success      200   {object}  dto.DeadlineResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/deadlines/{id} [put]
func (h *DeadlineHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.DeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and due date are required"})
		return
	}
	d, err := h.svc.Update(c.Request.Context(), id, req.Title, req.Description, req.DueDate.Ptr(), req.DueTime)
	if err != nil {
		writeMutationError(c, err, "Failed to update deadline")
		return
	}
	c.JSON(http.StatusOK, dto.NewDeadlineResponse(d, h.now()))
}

// Delete godoc
// @Summary      Delete a deadline
// @Tags         deadlines
// @Produce      json
// @Param        id   path      string  true  "Deadline ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/deadlines/{id} [delete]
func (h *DeadlineHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deadline not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete deadline"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deadline deleted successfully"})
}

// parseID reads the :id path param. A malformed id behaves like an absent
// record: the caller named something that cannot exist.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deadline not found"})
		return uuid.UUID{}, false
	}
	return id, true
}

func writeMutationError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and due date are required"})
	case errors.Is(err, service.ErrBadDueTime):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Deadline not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
