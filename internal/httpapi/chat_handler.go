package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/supervity/supervity/internal/contract"
	"github.com/supervity/supervity/internal/intelligence"
)

type ChatHandler struct {
	log  *zap.SugaredLogger
	chat intelligence.ChatService
}

func NewChatHandler(log *zap.SugaredLogger, chat intelligence.ChatService) *ChatHandler {
	return &ChatHandler{log: log.With("handler", "chat"), chat: chat}
}

// POST /chat/
func (h *ChatHandler) Chat(c *gin.Context) {
	var req contract.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, contract.ErrorBody{Detail: "invalid request body"})
		return
	}

	resp, err := h.chat.Chat(c.Request.Context(), req)
	if err != nil {
		h.log.Warnw("chat_failed", "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /chat/health
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.chat.Health(c.Request.Context()))
}
