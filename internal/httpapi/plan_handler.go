package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/supervity/supervity/internal/contract"
	"github.com/supervity/supervity/internal/service"
)

type PlanHandler struct {
	log   *zap.SugaredLogger
	plans service.PlanService
}

func NewPlanHandler(log *zap.SugaredLogger, plans service.PlanService) *PlanHandler {
	return &PlanHandler{log: log.With("handler", "plan"), plans: plans}
}

// POST /agent/plan/:userID
func (h *PlanHandler) Plan(c *gin.Context) {
	userID := c.Param("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, contract.ErrorBody{Detail: "user id is required"})
		return
	}

	resp, err := h.plans.Plan(c.Request.Context(), userID)
	if err != nil {
		h.log.Warnw("plan_failed", "user_id", userID, "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /agent/health
func (h *PlanHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.plans.Health(c.Request.Context()))
}
