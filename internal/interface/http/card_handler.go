package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/go-mongo-shop/internal/application"
	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
	"github.com/oksasatya/go-mongo-shop/pkg/response"
)

type CardHandler struct {
	Svc *application.CardService
}

func NewCardHandler(svc *application.CardService) *CardHandler {
	return &CardHandler{Svc: svc}
}

func (h *CardHandler) Create(c *gin.Context) {
	var card entity.Card
	if err := c.ShouldBindJSON(&card); err != nil {
		badRequest(c, err)
		return
	}
	card.ID = primitive.NilObjectID
	stored, err := h.Svc.Create(c.Request.Context(), &card)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, stored)
}

func (h *CardHandler) Get(c *gin.Context) {
	card, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, card)
}

func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, cards)
}
