package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/handlers"
	"github.com/pushp314/feedflow-backend/internal/middleware"
)

func RegisterAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())

	// Changelog entries
	admin.POST("/changelog", handlers.AdminCreateChangelog)
	admin.PATCH("/changelog/:id", handlers.AdminUpdateChangelog)
	admin.DELETE("/changelog/:id", handlers.AdminDeleteChangelog)

	// Changelog categories
	admin.GET("/changelog-categories", handlers.AdminListCategories)
	admin.POST("/changelog-categories", handlers.AdminCreateCategory)
	admin.PATCH("/changelog-categories/:id", handlers.AdminUpdateCategory)
	admin.DELETE("/changelog-categories/:id", handlers.AdminDeleteCategory)

	// Members
	admin.GET("/members", handlers.AdminListMembers)
	admin.PATCH("/members/:id", handlers.AdminUpdateMember)
	admin.DELETE("/members/:id", handlers.AdminDeleteMember)

	// API keys
	admin.GET("/api-keys", handlers.AdminListAPIKeys)
	admin.POST("/api-keys", handlers.AdminCreateAPIKey)
	admin.DELETE("/api-keys/:id", handlers.AdminRevokeAPIKey)

	// Notification settings
	admin.GET("/settings", handlers.AdminGetSettings)
	admin.PATCH("/settings", handlers.AdminUpdateSettings)
}
