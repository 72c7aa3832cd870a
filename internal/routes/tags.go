package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/handlers"
	"github.com/pushp314/feedflow-backend/internal/middleware"
)

func RegisterTagRoutes(r *gin.RouterGroup) {
	tags := r.Group("/tags")

	tags.GET("", handlers.ListTags)

	admin := tags.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		admin.POST("", handlers.CreateTag)
		admin.PATCH("/:id", handlers.UpdateTag)
		admin.DELETE("/:id", handlers.DeleteTag)
	}
}

func RegisterStatusRoutes(r *gin.RouterGroup) {
	r.GET("/statuses", handlers.ListStatuses)
}
