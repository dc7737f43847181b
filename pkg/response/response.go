package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageBody is the payload for application errors: {"message": "..."}.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is the payload for malformed identifiers: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

// OK writes data as a 200 JSON response. A nil pointer is written as null.
func OK[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, data)
}

func Message(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, MessageBody{Message: message})
}

func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}
