package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-mongo-shop/internal/application"
	"github.com/oksasatya/go-mongo-shop/pkg/response"
)

type UserHandler struct {
	Svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

type promoteAdminRequest struct {
	Requester     string `json:"requester"`
	NewAdminEmail string `json:"newAdminEmail"`
}

type adminResponse struct {
	Admin bool `json:"admin"`
}

// GetAdmin handles GET /user?email=
func (h *UserHandler) GetAdmin(c *gin.Context) {
	ok, err := h.Svc.IsAdmin(c.Request.Context(), c.Query("email"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, adminResponse{Admin: ok})
}

// Save handles PUT /user
func (h *UserHandler) Save(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.Svc.Save(c.Request.Context(), body)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, res)
}

// PromoteAdmin handles PUT /user/admin. An empty body reads as {} so it reaches the missing requester check.
func (h *UserHandler) PromoteAdmin(c *gin.Context) {
	var req promoteAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return
	}
	res, err := h.Svc.PromoteToAdmin(c.Request.Context(), req.Requester, req.NewAdminEmail)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, res)
}

// MarkPaid handles PUT /makepayment?email=
func (h *UserHandler) MarkPaid(c *gin.Context) {
	res, err := h.Svc.MarkPaid(c.Request.Context(), c.Query("email"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, res)
}
