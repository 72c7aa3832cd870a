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

// AdminListAPIKeys returns key metadata. The plaintext key is never stored
// and cannot appear here.
func AdminListAPIKeys(c *gin.Context) {
	var keys []models.ApiKey
	if err := database.DB.
		Preload("CreatedBy").
		Order("created_at DESC").
		Find(&keys).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch API keys"})
		return
	}
	c.JSON(http.StatusOK, keys)
}

// AdminCreateAPIKey mints a key and returns the plaintext exactly once.
func AdminCreateAPIKey(c *gin.Context) {
	adminID := getAdminID(c)

	var input struct {
		Name      string     `json:"name" binding:"required"`
		ExpiresAt *time.Time `json:"expiresAt"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	key, hash, prefix := utils.GenerateAPIKey()

	record := models.ApiKey{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(input.Name),
		KeyHash:     hash,
		Prefix:      prefix,
		CreatedByID: adminID,
		ExpiresAt:   input.ExpiresAt,
	}

	if err := database.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create API key"})
		return
	}

	logAdminAction(database.DB, adminID, models.ActionCreateAPIKey, record.ID, "api_key", "Created: "+record.Name)

	c.JSON(http.StatusCreated, gin.H{
		"id":     record.ID,
		"name":   record.Name,
		"prefix": prefix,
		"key":    key,
	})
}

// AdminRevokeAPIKey deletes a key; requests bearing it fail from then on.
func AdminRevokeAPIKey(c *gin.Context) {
	keyID := c.Param("id")
	adminID := getAdminID(c)

	var key models.ApiKey
	if err := database.DB.First(&key, "id = ?", keyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err := database.DB.Delete(&key).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke API key"})
		return
	}

	logAdminAction(database.DB, adminID, models.ActionRevokeAPIKey, keyID, "api_key", "Revoked: "+key.Name)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
