package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/supervity/supervity/internal/contract"
	"github.com/supervity/supervity/internal/domain"
	"github.com/supervity/supervity/internal/service"
)

type UserHandler struct {
	log   *zap.SugaredLogger
	users service.UserService
}

func NewUserHandler(log *zap.SugaredLogger, users service.UserService) *UserHandler {
	return &UserHandler{log: log.With("handler", "user"), users: users}
}

// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var p contract.UserPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, contract.ErrorBody{Detail: "invalid request body"})
		return
	}

	u := &domain.User{ID: p.ID, Name: p.Name, Email: p.Email}
	if err := h.users.Create(c.Request.Context(), u); err != nil {
		respondError(c, err)
		return
	}

	created := u.CreatedAt
	c.JSON(http.StatusCreated, contract.UserPayload{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: &created,
	})
}

// GET /users/:userID
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.users.GetByID(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}

	created := u.CreatedAt
	c.JSON(http.StatusOK, contract.UserPayload{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: &created,
	})
}
