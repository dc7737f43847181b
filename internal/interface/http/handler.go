package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/oksasatya/go-mongo-shop/internal/domain/errors"
	"github.com/oksasatya/go-mongo-shop/pkg/validation"
)

// fail records err for the error middleware.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// badRequest records a binding failure as a 400 with a readable message.
func badRequest(c *gin.Context, err error) {
	fail(c, apperrors.NewValidation(validation.Message(err)))
}
