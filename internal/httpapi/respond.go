// Package httpapi exposes the planner over HTTP: plan synthesis, chat, and
// the CRUD surface the client edits assignments through. Handlers translate
// between wire payloads and services; no planning logic lives here.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supervity/supervity/internal/contract"
	"github.com/supervity/supervity/internal/repository"
)

// respondError maps service errors onto status codes and the {detail}
// envelope. Unknown errors become opaque 500s; internals never leak.
func respondError(c *gin.Context, err error) {
	var vErr *contract.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusUnprocessableEntity, contract.ErrorBody{Detail: vErr.Error()})
		return
	}

	var planErr *contract.PlanError
	if errors.As(err, &planErr) {
		switch planErr.Code {
		case contract.ErrUserNotFound:
			c.JSON(http.StatusNotFound, contract.ErrorBody{Detail: planErr.Message})
		default:
			c.JSON(http.StatusInternalServerError, contract.ErrorBody{Detail: planErr.Message})
		}
		return
	}

	var chatErr *contract.ChatError
	if errors.As(err, &chatErr) {
		switch chatErr.Code {
		case contract.ErrChatEmpty:
			c.JSON(http.StatusBadRequest, contract.ErrorBody{Detail: chatErr.Message})
		case contract.ErrChatUnavailable:
			c.JSON(http.StatusServiceUnavailable, contract.ErrorBody{Detail: chatErr.Message})
		default:
			c.JSON(http.StatusBadGateway, contract.ErrorBody{Detail: chatErr.Message})
		}
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, contract.ErrorBody{Detail: "not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, contract.ErrorBody{Detail: "internal error"})
}
