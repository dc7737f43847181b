package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/go-mongo-shop/internal/application"
	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
	"github.com/oksasatya/go-mongo-shop/pkg/response"
)

type ProductHandler struct {
	Svc *application.ProductService
}

func NewProductHandler(svc *application.ProductService) *ProductHandler {
	return &ProductHandler{Svc: svc}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, products)
}

// Search handles GET /products/search?q=&size=
func (h *ProductHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	products, err := h.Svc.SearchProducts(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, products)
}

// Get writes the product or null when absent.
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, p)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var p entity.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	p.ID = primitive.NilObjectID
	stored, err := h.Svc.Create(c.Request.Context(), &p)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, stored)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	res, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, res)
}
