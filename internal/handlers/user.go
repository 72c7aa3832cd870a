package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/pushp314/feedflow-backend/pkg/errors"
)

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// GetMe returns the authenticated user's profile. Errors are attached to
// the context and rendered by the error middleware.
func GetMe(c *gin.Context) {
	userID := c.GetString("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.Error(errors.NotFound("User not found"))
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMe sets or clears the avatar color. This is the only field a user
// can change on their own record.
func UpdateMe(c *gin.Context) {
	userID := c.GetString("userId")

	var input struct {
		AvatarColor *string `json:"avatarColor"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(errors.BadRequest(err.Error()))
		return
	}

	if input.AvatarColor != nil && !hexColorRE.MatchString(*input.AvatarColor) {
		c.Error(errors.BadRequest("Invalid color"))
		return
	}

	if err := database.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("avatar_color", input.AvatarColor).Error; err != nil {
		c.Error(errors.Internal("Failed to update profile"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": userID, "avatarColor": input.AvatarColor})
}
