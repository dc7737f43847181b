package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-mongo-shop/internal/interface/http"
)

type PaymentModule struct {
	Handler *handlers.PaymentHandler
}

func NewPaymentModule(h *handlers.PaymentHandler) *PaymentModule { return &PaymentModule{Handler: h} }

func (m *PaymentModule) Register(rg *gin.RouterGroup) {
	rg.POST("/create-payment-intent", m.Handler.CreateIntent)
}
