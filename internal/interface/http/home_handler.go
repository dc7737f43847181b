package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const welcomeMessage = "Shop server is running"

type HomeHandler struct {
	// Ping checks the document store; nil means there is nothing to check.
	Ping func(ctx context.Context) error
}

func NewHomeHandler(ping func(ctx context.Context) error) *HomeHandler {
	return &HomeHandler{Ping: ping}
}

func (h *HomeHandler) Welcome(c *gin.Context) {
	c.String(http.StatusOK, welcomeMessage)
}

func (h *HomeHandler) Health(c *gin.Context) {
	if h.Ping != nil {
		if err := h.Ping(c.Request.Context()); err != nil {
			fail(c, errors.Wrap(err, "store ping"))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
