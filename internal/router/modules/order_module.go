package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-mongo-shop/internal/interface/http"
)

type OrderModule struct {
	Handler *handlers.OrderHandler
}

func NewOrderModule(h *handlers.OrderHandler) *OrderModule { return &OrderModule{Handler: h} }

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/orders")
	g.GET("", m.Handler.List)
	g.POST("", m.Handler.Create)
	g.DELETE("", m.Handler.DeleteByEmail)
	g.PUT("/:id", m.Handler.Ship)
	g.DELETE("/:id", m.Handler.Delete)
	g.DELETE("/deleteall/:id", m.Handler.DeleteByProduct)
}
