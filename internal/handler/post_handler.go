package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kakigather/gather-backend/internal/common"
	"github.com/kakigather/gather-backend/internal/domain"
	"github.com/kakigather/gather-backend/internal/service"
	"github.com/kakigather/gather-backend/pkg/logger"
)

// PostHandler handles post requests
type PostHandler struct {
	service service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// ListByUser handles GET /posts/user/:user_id
func (h *PostHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	posts, err := h.service.ListByUser(userID)
	if err != nil {
		if errors.Is(err, common.ErrNoPostsForUser) {
			common.JSONError(c, http.StatusNotFound, "No posts found for this user")
			return
		}
		logger.GetLogger().Error().Err(err).Int("user_id", userID).Msg("list posts by user")
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Create handles POST /posts. The author must exist; beyond that the body is
// stored as given, with created_at assigned server-side.
func (h *PostHandler) Create(c *gin.Context) {
	var req domain.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.JSONError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	post, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			common.JSONError(c, http.StatusBadRequest, "User does not exist")
			return
		}
		logger.GetLogger().Error().Err(err).Int("user_id", req.UserID).Msg("create post")
		common.JSONError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /posts/:id. Responds 200 whether or not a row
// matched.
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.service.Delete(id); err != nil {
		logger.GetLogger().Error().Err(err).Int("post_id", id).Msg("delete post")
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Post deleted successfully"})
}
