package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/handlers"
	"github.com/pushp314/feedflow-backend/internal/middleware"
)

func RegisterBoardRoutes(r *gin.RouterGroup) {
	boards := r.Group("/boards")

	boards.GET("", handlers.ListBoards)

	admin := boards.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		admin.POST("", handlers.CreateBoard)
		admin.PATCH("/:id", handlers.UpdateBoard)
		admin.DELETE("/:id", handlers.DeleteBoard)
	}
}
