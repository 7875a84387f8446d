package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/supervity/supervity/internal/contract"
	"github.com/supervity/supervity/internal/domain"
	"github.com/supervity/supervity/internal/service"
)

type AssignmentHandler struct {
	log         *zap.SugaredLogger
	assignments service.AssignmentService
}

func NewAssignmentHandler(log *zap.SugaredLogger, assignments service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{log: log.With("handler", "assignment"), assignments: assignments}
}

func assignmentFromPayload(p contract.AssignmentPayload) *domain.Assignment {
	return &domain.Assignment{
		ID:             p.ID,
		UserID:         p.UserID,
		CourseID:       p.CourseID,
		Title:          p.Title,
		Description:    p.Description,
		DueAt:          p.DueDate,
		Priority:       p.Priority,
		EstimatedHours: p.EstimatedHours,
		Status:         domain.AssignmentStatus(p.Status),
		Category:       p.Category,
	}
}

// POST /assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	var p contract.AssignmentPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, contract.ErrorBody{Detail: "invalid request body"})
		return
	}

	a := assignmentFromPayload(p)
	if err := h.assignments.Create(c.Request.Context(), a); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service.AssignmentToPayload(a))
}

// GET /assignments/:id
func (h *AssignmentHandler) Get(c *gin.Context) {
	a, err := h.assignments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.AssignmentToPayload(a))
}

// GET /users/:userID/assignments
func (h *AssignmentHandler) ListByUser(c *gin.Context) {
	list, err := h.assignments.ListByUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	payloads := make([]contract.AssignmentPayload, 0, len(list))
	for _, a := range list {
		payloads = append(payloads, service.AssignmentToPayload(a))
	}
	c.JSON(http.StatusOK, payloads)
}

// PUT /assignments/:id
func (h *AssignmentHandler) Update(c *gin.Context) {
	var p contract.AssignmentPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, contract.ErrorBody{Detail: "invalid request body"})
		return
	}

	a := assignmentFromPayload(p)
	a.ID = c.Param("id")
	if err := h.assignments.Update(c.Request.Context(), a); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.AssignmentToPayload(a))
}

// DELETE /assignments/:id
func (h *AssignmentHandler) Delete(c *gin.Context) {
	if err := h.assignments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
