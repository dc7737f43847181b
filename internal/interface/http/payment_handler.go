package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-mongo-shop/internal/application"
	"github.com/oksasatya/go-mongo-shop/pkg/response"
)

type PaymentHandler struct {
	Svc *application.PaymentService
}

func NewPaymentHandler(svc *application.PaymentService) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

type paymentIntentRequest struct {
	Price *float64 `json:"price" binding:"required,gte=0"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent handles POST /create-payment-intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	secret, err := h.Svc.CreateIntent(c.Request.Context(), *req.Price)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, paymentIntentResponse{ClientSecret: secret})
}
