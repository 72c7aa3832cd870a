package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/handlers"
	"github.com/pushp314/feedflow-backend/internal/middleware"
)

// The :id segment is the post id for mutations and the slug for the
// public detail read, matching what the web client sends.
func RegisterPostRoutes(r *gin.RouterGroup) {
	posts := r.Group("/posts")

	// Public reads with optional auth for hasVoted state
	posts.GET("", middleware.OptionalAuthMiddleware(), handlers.ListPosts)
	posts.GET("/:id", middleware.OptionalAuthMiddleware(), handlers.GetPost)
	posts.GET("/:id/comments", handlers.ListComments)

	protected := posts.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", handlers.CreatePost)
		protected.PATCH("/:id", handlers.UpdatePost)
		protected.POST("/:id/vote", handlers.ToggleVote)
		protected.POST("/:id/comments", handlers.CreateComment)
	}

	admin := posts.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		admin.DELETE("/:id", handlers.DeletePost)
	}
}
