package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
)

// ListTags returns all tags alphabetically.
func ListTags(c *gin.Context) {
	var tags []models.Tag
	if err := database.DB.Order("name ASC").Find(&tags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tags"})
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateTag upserts a tag by name: an existing name gets its color updated
// instead of erroring on the unique index.
func CreateTag(c *gin.Context) {
	adminID := getAdminID(c)

	var input struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name required"})
		return
	}

	name := strings.TrimSpace(input.Name)

	var tag models.Tag
	err := database.DB.Where("name = ?", name).First(&tag).Error
	if err == nil {
		tag.Color = nil
		if input.Color != "" {
			tag.Color = &input.Color
		}
		if err := database.DB.Save(&tag).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tag"})
			return
		}
	} else {
		tag = models.Tag{ID: uuid.New().String(), Name: name}
		if input.Color != "" {
			tag.Color = &input.Color
		}
		if err := database.DB.Create(&tag).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag"})
			return
		}
	}

	logAdminAction(database.DB, adminID, models.ActionManageTag, tag.ID, "tag", "Tag upserted: "+tag.Name)

	c.JSON(http.StatusCreated, tag)
}

// UpdateTag renames a tag or changes its color.
func UpdateTag(c *gin.Context) {
	tagID := c.Param("id")
	adminID := getAdminID(c)

	var input struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	var tag models.Tag
	if err := database.DB.First(&tag, "id = ?", tagID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	tag.Name = strings.TrimSpace(input.Name)
	tag.Color = nil
	if input.Color != "" {
		tag.Color = &input.Color
	}

	if err := database.DB.Save(&tag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tag"})
		return
	}

	logAdminAction(database.DB, adminID, models.ActionManageTag, tag.ID, "tag", "Tag updated: "+tag.Name)

	c.JSON(http.StatusOK, tag)
}

// DeleteTag removes a tag and its post links.
func DeleteTag(c *gin.Context) {
	tagID := c.Param("id")
	adminID := getAdminID(c)

	var tag models.Tag
	if err := database.DB.First(&tag, "id = ?", tagID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	database.DB.Exec("DELETE FROM post_tags WHERE tag_id = ?", tagID)

	if err := database.DB.Delete(&tag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tag"})
		return
	}

	logAdminAction(database.DB, adminID, models.ActionManageTag, tagID, "tag", "Tag deleted: "+tag.Name)

	c.Status(http.StatusNoContent)
}
