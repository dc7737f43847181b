package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-mongo-shop/internal/interface/http"
)

type CardModule struct {
	Handler *handlers.CardHandler
}

func NewCardModule(h *handlers.CardHandler) *CardModule { return &CardModule{Handler: h} }

func (m *CardModule) Register(rg *gin.RouterGroup) {
	rg.GET("/card", m.Handler.List)
	rg.POST("/card", m.Handler.Create)
	rg.GET("/card/:id", m.Handler.Get)
}
