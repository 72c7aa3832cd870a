package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/pushp314/feedflow-backend/pkg/utils"
)

func changelogSlugTaken(slug string) bool {
	var count int64
	database.DB.Model(&models.ChangelogEntry{}).Where("slug = ?", slug).Count(&count)
	return count > 0
}

type changelogInput struct {
	Title         *string    `json:"title"`
	Content       *string    `json:"content"`
	Categories    *[]string  `json:"categories"`
	FeaturedImage *string    `json:"featuredImage"`
	State         *string    `json:"state"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

// AdminCreateChangelog creates an entry, defaulting to DRAFT. Publishing
// immediately (state LIVE) stamps publishedAt.
func AdminCreateChangelog(c *gin.Context) {
	adminID := getAdminID(c)

	var req changelogInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	title := strings.TrimSpace(*req.Title)
	slug := utils.UniqueSlug(utils.Slugify(title), changelogSlugTaken)

	entry := models.ChangelogEntry{
		ID:    uuid.New().String(),
		Title: title,
		Slug:  slug,
		State: models.ChangelogDraft,
	}
	if req.Content != nil {
		entry.Content = *req.Content
	}
	if req.Categories != nil {
		entry.EncodeCategories(*req.Categories)
	} else {
		entry.EncodeCategories(nil)
	}
	if req.FeaturedImage != nil && *req.FeaturedImage != "" {
		entry.FeaturedImage = req.FeaturedImage
	}
	if req.State != nil && *req.State == string(models.ChangelogLive) {
		entry.State = models.ChangelogLive
		publishedAt := time.Now()
		if req.PublishedAt != nil {
			publishedAt = *req.PublishedAt
		}
		entry.PublishedAt = &publishedAt
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create changelog entry"})
		return
	}

	logAdminAction(database.DB, adminID, models.ActionManageRelease, entry.ID, "changelog", "Created: "+entry.Title)

	entry.DecodeCategories()
	c.JSON(http.StatusCreated, entry)
}

// AdminUpdateChangelog edits an entry. The DRAFT to LIVE transition stamps
// publishedAt (request-supplied or now); it is one-way in normal use.
func AdminUpdateChangelog(c *gin.Context) {
	id := c.Param("id")
	adminID := getAdminID(c)

	var req changelogInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var entry models.ChangelogEntry
	if err := database.DB.First(&entry, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	isPublishing := req.State != nil &&
		*req.State == string(models.ChangelogLive) &&
		entry.State == models.ChangelogDraft

	if req.Title != nil {
		entry.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		entry.Content = *req.Content
	}
	if req.Categories != nil {
		entry.EncodeCategories(*req.Categories)
	}
	if req.FeaturedImage != nil {
		entry.FeaturedImage = nil
		if *req.FeaturedImage != "" {
			entry.FeaturedImage = req.FeaturedImage
		}
	}
	if req.State != nil {
		entry.State = models.ChangelogState(*req.State)
	}
	if isPublishing {
		publishedAt := time.Now()
		if req.PublishedAt != nil {
			publishedAt = *req.PublishedAt
		}
		entry.PublishedAt = &publishedAt
	}

	if err := database.DB.Save(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update changelog entry"})
		return
	}

	action := "Updated: " + entry.Title
	if isPublishing {
		action = "Published: " + entry.Title
	}
	logAdminAction(database.DB, adminID, models.ActionManageRelease, entry.ID, "changelog", action)

	entry.DecodeCategories()
	c.JSON(http.StatusOK, entry)
}

// AdminDeleteChangelog removes an entry.
func AdminDeleteChangelog(c *gin.Context) {
	id := c.Param("id")
	adminID := getAdminID(c)

	if err := database.DB.Delete(&models.ChangelogEntry{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}

	logAdminAction(database.DB, adminID, models.ActionManageRelease, id, "changelog", "Deleted changelog entry")

	c.JSON(http.StatusOK, gin.H{"success": true})
}
