package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
)

// ListStatuses returns the pipeline stages ordered by position, which is
// also the roadmap column order.
func ListStatuses(c *gin.Context) {
	var statuses []models.Status
	if err := database.DB.Order("position ASC").Find(&statuses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statuses"})
		return
	}
	c.JSON(http.StatusOK, statuses)
}
