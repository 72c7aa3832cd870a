package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
)

var nonCategoryChars = regexp.MustCompile(`[^A-Z0-9]+`)

// categoryValue derives the stable value from a label: upper snake case.
func categoryValue(label string) string {
	value := strings.ToUpper(strings.TrimSpace(label))
	value = nonCategoryChars.ReplaceAllString(value, "_")
	return strings.Trim(value, "_")
}

// AdminListCategories returns all changelog categories by position.
func AdminListCategories(c *gin.Context) {
	var categories []models.ChangelogCategory
	if err := database.DB.Order("position ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// AdminCreateCategory adds a category at the end. A duplicate derived value
// gets a timestamp suffix rather than failing.
func AdminCreateCategory(c *gin.Context) {
	adminID := getAdminID(c)

	var input struct {
		Label string `json:"label" binding:"required"`
		Color string `json:"color" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Label and color are required"})
		return
	}

	value := categoryValue(input.Label)

	var existing int64
	database.DB.Model(&models.ChangelogCategory{}).Where("value = ?", value).Count(&existing)
	if existing > 0 {
		value = fmt.Sprintf("%s_%d", value, time.Now().UnixMilli())
	}

	var maxPos struct{ Max int }
	database.DB.Model(&models.ChangelogCategory{}).Select("COALESCE(MAX(position), -1) as max").Scan(&maxPos)

	category := models.ChangelogCategory{
		ID:       uuid.New().String(),
		Value:    value,
		Label:    strings.TrimSpace(input.Label),
		Color:    strings.TrimSpace(input.Color),
		Position: maxPos.Max + 1,
	}

	if err := database.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	logAdminAction(database.DB, adminID, models.ActionManageCategory, category.ID, "changelog_category", "Created: "+category.Label)

	c.JSON(http.StatusCreated, category)
}

// AdminUpdateCategory edits label and color. The value stays stable so
// existing entries keep resolving.
func AdminUpdateCategory(c *gin.Context) {
	categoryID := c.Param("id")
	adminID := getAdminID(c)

	var input struct {
		Label string `json:"label" binding:"required"`
		Color string `json:"color" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Label and color are required"})
		return
	}

	var category models.ChangelogCategory
	if err := database.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	category.Label = strings.TrimSpace(input.Label)
	category.Color = strings.TrimSpace(input.Color)

	if err := database.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	logAdminAction(database.DB, adminID, models.ActionManageCategory, category.ID, "changelog_category", "Updated: "+category.Label)

	c.JSON(http.StatusOK, category)
}

// AdminDeleteCategory removes a category. Entries referencing its value
// keep the orphaned value and render with a fallback color.
func AdminDeleteCategory(c *gin.Context) {
	categoryID := c.Param("id")
	adminID := getAdminID(c)

	if err := database.DB.Delete(&models.ChangelogCategory{}, "id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	logAdminAction(database.DB, adminID, models.ActionManageCategory, categoryID, "changelog_category", "Deleted category")

	c.Status(http.StatusNoContent)
}
