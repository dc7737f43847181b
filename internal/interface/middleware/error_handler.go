package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	apperrors "github.com/oksasatya/go-mongo-shop/internal/domain/errors"
	"github.com/oksasatya/go-mongo-shop/pkg/response"
)

// ErrorHandler turns the last error recorded with c.Error into the response:
// malformed ids become 400 {"error"}, AppErrors use their own status with
// {"message"}, anything else is a bare 500.
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		status := http.StatusInternalServerError
		appErr, isApp := apperrors.AsAppError(err)
		switch {
		case apperrors.IsMalformedIdentifier(err):
			status = http.StatusBadRequest
		case isApp:
			status = appErr.HTTPCode()
		}

		if logger != nil {
			entry := logger.WithFields(logrus.Fields{
				"request_id": c.GetString("request_id"),
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"status":     status,
			})
			if status >= http.StatusInternalServerError {
				entry.Error(err.Error())
			} else {
				entry.Warn(err.Error())
			}
		}

		if c.Writer.Written() {
			return
		}
		switch {
		case apperrors.IsMalformedIdentifier(err):
			response.Error(c, status, apperrors.ErrMalformedIdentifier.Error())
		case isApp:
			response.Message(c, status, appErr.Message())
		default:
			c.AbortWithStatus(status)
		}
	}
}
