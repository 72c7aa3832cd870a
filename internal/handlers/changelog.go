package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
)

// ListChangelog returns LIVE entries newest first. Admins can ask for
// drafts too with ?drafts=true.
func ListChangelog(c *gin.Context) {
	includeDrafts := false
	if c.Query("drafts") == "true" {
		if userID := c.GetString("userId"); userID != "" {
			var user models.User
			if err := database.DB.First(&user, "id = ?", userID).Error; err == nil {
				includeDrafts = user.Role == models.RoleAdmin
			}
		}
	}

	query := database.DB.Model(&models.ChangelogEntry{}).
		Order("published_at DESC, created_at DESC")
	if !includeDrafts {
		query = query.Where("state = ?", models.ChangelogLive)
	}

	var entries []models.ChangelogEntry
	if err := query.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch changelog"})
		return
	}

	for i := range entries {
		entries[i].DecodeCategories()
	}

	c.JSON(http.StatusOK, entries)
}

// GetChangelogEntry fetches one LIVE entry by slug; drafts 404.
func GetChangelogEntry(c *gin.Context) {
	slug := c.Param("slug")

	var entry models.ChangelogEntry
	if err := database.DB.Where("slug = ?", slug).First(&entry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if entry.State != models.ChangelogLive {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	entry.DecodeCategories()
	c.JSON(http.StatusOK, entry)
}

// ListChangelogCategories is the public categories feed for badge
// rendering: value, label, color.
func ListChangelogCategories(c *gin.Context) {
	var categories []models.ChangelogCategory
	if err := database.DB.Order("position ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}
