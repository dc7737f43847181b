package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-mongo-shop/internal/interface/http"
)

type ProductModule struct {
	Handler *handlers.ProductHandler
}

func NewProductModule(h *handlers.ProductHandler) *ProductModule { return &ProductModule{Handler: h} }

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/products")
	g.GET("", m.Handler.List)
	g.GET("/search", m.Handler.Search)
	g.GET("/:id", m.Handler.Get)
	g.POST("", m.Handler.Create)
	g.DELETE("/:id", m.Handler.Delete)
}
