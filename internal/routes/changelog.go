package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/handlers"
	"github.com/pushp314/feedflow-backend/internal/middleware"
)

// RegisterChangelogRoutes configures the public changelog pages.
func RegisterChangelogRoutes(r *gin.RouterGroup) {
	changelog := r.Group("/changelog")
	changelog.GET("", middleware.OptionalAuthMiddleware(), handlers.ListChangelog)
	changelog.GET("/:slug", handlers.GetChangelogEntry)
}

// RegisterPublicAPIRoutes configures the versioned key-authenticated
// ingestion surface consumed by external tooling.
func RegisterPublicAPIRoutes(r *gin.RouterGroup) {
	v1 := r.Group("/v1")
	v1.Use(middleware.PublicAPIRateLimit())
	{
		v1.POST("/changelog", handlers.IngestChangelog)
		v1.GET("/changelog/categories", handlers.ListChangelogCategories)
	}
}
