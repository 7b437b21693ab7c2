package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kakigather/gather-backend/internal/handler"
)

// Setup registers the legacy route table. Paths, methods and the odd param
// names (DELETE /bookings/:user_id carries a booking id) are frozen; existing
// clients depend on them as-is.
func Setup(
	router *gin.Engine,
	root *handler.RootHandler,
	posts *handler.PostHandler,
	bookings *handler.BookingHandler,
	likes *handler.LikeHandler,
) {
	router.GET("/", root.Index)

	// Posts
	router.GET("/posts/user/:user_id", posts.ListByUser)
	router.POST("/posts", posts.Create)
	router.DELETE("/posts/:id", posts.Delete)

	// Bookings
	router.GET("/bookings/user/:user_id", bookings.ListByUser)
	router.POST("/bookings", bookings.CreateOrReactivate)
	router.PUT("/bookings/:user_id", bookings.UpdateSchedule)
	router.DELETE("/bookings/:user_id", bookings.Delete)

	// Likes
	router.GET("/likes/user/:user_id", likes.ListByUser)
	router.GET("/likes/post/:post_id", likes.ListPostLikers)
	router.PUT("/likes/:userId/:postId", likes.Remove)
}
