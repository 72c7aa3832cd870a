package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"gorm.io/gorm"
)

// AdminGetSettings returns the notification settings singleton, defaults
// when nothing has been saved yet.
func AdminGetSettings(c *gin.Context) {
	var settings models.NotificationSettings
	if err := database.DB.First(&settings, "id = ?", models.SettingsID).Error; err != nil {
		settings = models.DefaultNotificationSettings()
	}
	c.JSON(http.StatusOK, settings)
}

type settingsInput struct {
	EmailEnabled *bool   `json:"emailEnabled"`
	SMTPHost     *string `json:"smtpHost"`
	SMTPPort     *int    `json:"smtpPort"`
	SMTPUser     *string `json:"smtpUser"`
	SMTPPass     *string `json:"smtpPass"`
	EmailFrom    *string `json:"emailFrom"`
	EmailTo      *string `json:"emailTo"`

	DiscordEnabled *bool   `json:"discordEnabled"`
	DiscordWebhook *string `json:"discordWebhook"`

	OnNewPost       *bool `json:"onNewPost"`
	OnStatusChange  *bool `json:"onStatusChange"`
	OnNewComment    *bool `json:"onNewComment"`
	OnVoteThreshold *bool `json:"onVoteThreshold"`
	VoteThreshold   *int  `json:"voteThreshold"`
}

// AdminUpdateSettings patches the singleton, creating it on first save.
func AdminUpdateSettings(c *gin.Context) {
	adminID := getAdminID(c)

	var input settingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var settings models.NotificationSettings
	if err := database.DB.First(&settings, "id = ?", models.SettingsID).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
			return
		}
		settings = models.DefaultNotificationSettings()
	}

	if input.EmailEnabled != nil {
		settings.EmailEnabled = *input.EmailEnabled
	}
	if input.SMTPHost != nil {
		settings.SMTPHost = input.SMTPHost
	}
	if input.SMTPPort != nil {
		settings.SMTPPort = *input.SMTPPort
	}
	if input.SMTPUser != nil {
		settings.SMTPUser = input.SMTPUser
	}
	if input.SMTPPass != nil {
		settings.SMTPPass = input.SMTPPass
	}
	if input.EmailFrom != nil {
		settings.EmailFrom = input.EmailFrom
	}
	if input.EmailTo != nil {
		settings.EmailTo = input.EmailTo
	}
	if input.DiscordEnabled != nil {
		settings.DiscordEnabled = *input.DiscordEnabled
	}
	if input.DiscordWebhook != nil {
		settings.DiscordWebhook = input.DiscordWebhook
	}
	if input.OnNewPost != nil {
		settings.OnNewPost = *input.OnNewPost
	}
	if input.OnStatusChange != nil {
		settings.OnStatusChange = *input.OnStatusChange
	}
	if input.OnNewComment != nil {
		settings.OnNewComment = *input.OnNewComment
	}
	if input.OnVoteThreshold != nil {
		settings.OnVoteThreshold = *input.OnVoteThreshold
	}
	if input.VoteThreshold != nil {
		settings.VoteThreshold = *input.VoteThreshold
	}

	if err := database.DB.Save(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	logAdminAction(database.DB, adminID, models.ActionUpdateSettings, models.SettingsID, "settings", "Notification settings updated")

	c.JSON(http.StatusOK, settings)
}
