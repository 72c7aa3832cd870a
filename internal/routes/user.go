package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/handlers"
	"github.com/pushp314/feedflow-backend/internal/middleware"
)

func RegisterUserRoutes(r *gin.RouterGroup) {
	me := r.Group("/user/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("", handlers.GetMe)
		me.PATCH("", handlers.UpdateMe)
	}
}
