package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kakigather/gather-backend/internal/common"
	"github.com/kakigather/gather-backend/internal/service"
	"github.com/kakigather/gather-backend/pkg/logger"
)

// likersErr is the plain-text body the legacy clients expect from a failed
// likers listing (spelling as in the original).
const likersErr = "An error has occured, please try again."

// LikeHandler handles like requests
type LikeHandler struct {
	service service.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(service service.LikeService) *LikeHandler {
	return &LikeHandler{service: service}
}

// ListByUser handles GET /likes/user/:user_id. The 404 message says "posts"
// rather than "likes"; legacy clients match on that exact string.
func (h *LikeHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	likes, err := h.service.ListByUser(userID)
	if err != nil {
		if errors.Is(err, common.ErrNoLikesForUser) {
			common.JSONError(c, http.StatusNotFound, "No posts found for this user")
			return
		}
		logger.GetLogger().Error().Err(err).Int("user_id", userID).Msg("list likes by user")
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, likes)
}

// ListPostLikers handles GET /likes/post/:post_id. Returns an array of
// {username, user_id, likes_id}; empty is a normal 200.
func (h *LikeHandler) ListPostLikers(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("post_id"))
	if err != nil {
		common.PlainError(c, likersErr)
		return
	}

	likers, err := h.service.ListPostLikers(postID)
	if err != nil {
		logger.GetLogger().Error().Err(err).Int("post_id", postID).Msg("list post likers")
		common.PlainError(c, likersErr)
		return
	}

	c.JSON(http.StatusOK, likers)
}

// Remove handles PUT /likes/:userId/:postId. Deactivates without checking
// existence first; responds 200 either way.
func (h *LikeHandler) Remove(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	postID, err := strconv.Atoi(c.Param("postId"))
	if err != nil {
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.service.Remove(userID, postID); err != nil {
		logger.GetLogger().Error().Err(err).
			Int("user_id", userID).Int("post_id", postID).
			Msg("remove like")
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	common.Message(c, "The like has been successfully removed")
}
