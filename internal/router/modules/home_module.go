package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-mongo-shop/internal/interface/http"
)

// HomeModule serves GET / and GET /healthz
type HomeModule struct {
	Handler *handlers.HomeHandler
}

func NewHomeModule(h *handlers.HomeHandler) *HomeModule { return &HomeModule{Handler: h} }

func (m *HomeModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Welcome)
	rg.GET("/healthz", m.Handler.Health)
}
