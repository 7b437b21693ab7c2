package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The legacy clients expect two error shapes: a bare {"error": "..."} JSON
// object on most routes, and a plain-text body on two of them. Both are kept
// bit-exact; new routes should not add a third shape.

// ErrorBody is the legacy JSON error envelope.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the legacy JSON acknowledgement envelope.
type MessageBody struct {
	Message string `json:"message"`
}

// JSONError writes the legacy JSON error envelope with the given status.
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// PlainError writes a plain-text 500 body.
func PlainError(c *gin.Context, message string) {
	c.String(http.StatusInternalServerError, message)
}

// Message writes a 200 with the legacy acknowledgement envelope.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}
