package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/supervity/supervity/internal/contract"
	"github.com/supervity/supervity/internal/domain"
	"github.com/supervity/supervity/internal/service"
)

type CourseHandler struct {
	log     *zap.SugaredLogger
	courses service.CourseService
}

func NewCourseHandler(log *zap.SugaredLogger, courses service.CourseService) *CourseHandler {
	return &CourseHandler{log: log.With("handler", "course"), courses: courses}
}

func courseFromPayload(p contract.CoursePayload) *domain.Course {
	return &domain.Course{
		ID:         p.ID,
		UserID:     p.UserID,
		Name:       p.Name,
		Code:       p.Code,
		Credits:    p.Credits,
		Instructor: p.Instructor,
		Semester:   p.Semester,
	}
}

// POST /courses
func (h *CourseHandler) Create(c *gin.Context) {
	var p contract.CoursePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, contract.ErrorBody{Detail: "invalid request body"})
		return
	}

	course := courseFromPayload(p)
	if err := h.courses.Create(c.Request.Context(), course); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service.CourseToPayload(course))
}

// GET /courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courses.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.CourseToPayload(course))
}

// GET /users/:userID/courses
func (h *CourseHandler) ListByUser(c *gin.Context) {
	list, err := h.courses.ListByUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	payloads := make([]contract.CoursePayload, 0, len(list))
	for _, course := range list {
		payloads = append(payloads, service.CourseToPayload(course))
	}
	c.JSON(http.StatusOK, payloads)
}

// PUT /courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	var p contract.CoursePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, contract.ErrorBody{Detail: "invalid request body"})
		return
	}

	course := courseFromPayload(p)
	course.ID = c.Param("id")
	if err := h.courses.Update(c.Request.Context(), course); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.CourseToPayload(course))
}

// DELETE /courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.courses.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
