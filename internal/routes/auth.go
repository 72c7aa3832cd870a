package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/handlers"
	"github.com/pushp314/feedflow-backend/internal/middleware"
)

func RegisterAuthRoutes(r gin.IRouter) {
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/logout", middleware.AuthMiddleware(), handlers.Logout)
}
