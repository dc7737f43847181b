package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-mongo-shop/internal/interface/http"
)

type ReviewModule struct {
	Handler *handlers.ReviewHandler
}

func NewReviewModule(h *handlers.ReviewHandler) *ReviewModule { return &ReviewModule{Handler: h} }

func (m *ReviewModule) Register(rg *gin.RouterGroup) {
	rg.GET("/reviews", m.Handler.List)
	rg.POST("/reviews", m.Handler.Create)
}
