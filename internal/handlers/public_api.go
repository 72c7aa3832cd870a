package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/pushp314/feedflow-backend/pkg/logger"
	"github.com/pushp314/feedflow-backend/pkg/utils"
)

// validateAPIKey resolves a bearer API key to its record, rejecting
// unknown and expired keys. The last-used stamp is best-effort and never
// blocks the request.
func validateAPIKey(authHeader string) *models.ApiKey {
	if authHeader == "" {
		return nil
	}

	key := utils.StripBearer(authHeader)
	if !strings.HasPrefix(key, utils.APIKeyPrefix) {
		return nil
	}

	var record models.ApiKey
	if err := database.DB.Where("key_hash = ?", utils.HashAPIKey(key)).First(&record).Error; err != nil {
		return nil
	}

	if record.ExpiresAt != nil && record.ExpiresAt.Before(time.Now()) {
		return nil
	}

	go func(id string) {
		now := time.Now()
		if err := database.DB.Model(&models.ApiKey{}).Where("id = ?", id).
			Update("last_used_at", &now).Error; err != nil {
			logger.Warn().Err(err).Str("key_id", id).Msg("Failed to stamp API key last use")
		}
	}(record.ID)

	return &record
}

type ingestChangelogInput struct {
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Slug          string     `json:"slug"`
	Categories    []string   `json:"categories"`
	FeaturedImage string     `json:"featuredImage"`
	PublishedAt   *time.Time `json:"publishedAt"`
	State         string     `json:"state"`
}

// IngestChangelog is the public v1 endpoint for publishing changelog
// entries from CI pipelines and release tooling, authenticated by API key.
func IngestChangelog(c *gin.Context) {
	apiKey := validateAPIKey(c.GetHeader("Authorization"))
	if apiKey == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		return
	}

	var input ingestChangelogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if strings.TrimSpace(input.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	if strings.TrimSpace(input.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	base := input.Title
	if strings.TrimSpace(input.Slug) != "" {
		base = input.Slug
	}
	slug := utils.UniqueSlug(utils.Slugify(base), changelogSlugTaken)

	publishedAt := time.Now()
	if input.PublishedAt != nil {
		publishedAt = *input.PublishedAt
	}

	state := models.ChangelogLive
	if input.State == string(models.ChangelogDraft) {
		state = models.ChangelogDraft
	}

	entry := models.ChangelogEntry{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(input.Title),
		Slug:        slug,
		Content:     strings.TrimSpace(input.Content),
		State:       state,
		PublishedAt: &publishedAt,
	}
	entry.EncodeCategories(input.Categories)
	if input.FeaturedImage != "" {
		entry.FeaturedImage = &input.FeaturedImage
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create changelog entry"})
		return
	}

	logger.Info().
		Str("entry_id", entry.ID).
		Str("slug", entry.Slug).
		Str("api_key_id", apiKey.ID).
		Msg("changelog entry ingested")

	entry.DecodeCategories()
	c.JSON(http.StatusCreated, entry)
}
