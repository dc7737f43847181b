package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-mongo-shop/internal/interface/http"
)

// UserModule wires user and role routes:
// GET /user, PUT /user, PUT /user/admin, PUT /makepayment
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule { return &UserModule{Handler: h} }

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/user", m.Handler.GetAdmin)
	rg.PUT("/user", m.Handler.Save)
	rg.PUT("/user/admin", m.Handler.PromoteAdmin)
	rg.PUT("/makepayment", m.Handler.MarkPaid)
}
