package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-mongo-shop/internal/application"
	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
	"github.com/oksasatya/go-mongo-shop/pkg/response"
)

type OrderHandler struct {
	Svc *application.OrderService
}

func NewOrderHandler(svc *application.OrderService) *OrderHandler {
	return &OrderHandler{Svc: svc}
}

// List handles GET /orders?email=
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.Svc.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, orders)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var o entity.Order
	if err := c.ShouldBindJSON(&o); err != nil {
		badRequest(c, err)
		return
	}
	stored, err := h.Svc.Place(c.Request.Context(), &o)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, stored)
}

// Ship handles PUT /orders/:id
func (h *OrderHandler) Ship(c *gin.Context) {
	res, err := h.Svc.Ship(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, res)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	res, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, res)
}

// DeleteByProduct handles DELETE /orders/deleteall/:id
func (h *OrderHandler) DeleteByProduct(c *gin.Context) {
	res, err := h.Svc.DeleteByProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, res)
}

// DeleteByEmail handles DELETE /orders?email=
func (h *OrderHandler) DeleteByEmail(c *gin.Context) {
	res, err := h.Svc.DeleteByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, res)
}
