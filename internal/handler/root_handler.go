package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kakigather/gather-backend/internal/common"
)

// RootHandler serves the liveness route
type RootHandler struct{}

// NewRootHandler creates a new RootHandler
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Index handles GET /. The exact message text is part of the contract.
func (h *RootHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, common.MessageBody{Message: "Weih dont crash sia"})
}
