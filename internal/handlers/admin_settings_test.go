package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAdminGetSettings_DefaultsBeforeFirstSave(t *testing.T) {
	SetupTestDB()
	database.DB.Delete(&models.NotificationSettings{}, "id = ?", models.SettingsID)

	c, w := testContext("GET", "/uri", nil)
	c.Set("userId", "admin_st1")
	AdminGetSettings(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.NotificationSettings
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.SettingsID, resp.ID)
	assert.Equal(t, 587, resp.SMTPPort)
	assert.Equal(t, 10, resp.VoteThreshold)
	assert.True(t, resp.OnNewPost)
	assert.True(t, resp.OnStatusChange)
	assert.False(t, resp.EmailEnabled)
}

func TestAdminUpdateSettings_PatchPersists(t *testing.T) {
	SetupTestDB()
	database.DB.Delete(&models.NotificationSettings{}, "id = ?", models.SettingsID)
	defer database.DB.Delete(&models.NotificationSettings{}, "id = ?", models.SettingsID)

	c, w := testContext("PATCH", "/uri", map[string]interface{}{
		"discordEnabled": true,
		"discordWebhook": "https://discord.example/hook",
		"voteThreshold":  25,
	})
	c.Set("userId", "admin_st2")
	AdminUpdateSettings(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var saved models.NotificationSettings
	database.DB.First(&saved, "id = ?", models.SettingsID)
	assert.True(t, saved.DiscordEnabled)
	assert.Equal(t, 25, saved.VoteThreshold)
	if assert.NotNil(t, saved.DiscordWebhook) {
		assert.Equal(t, "https://discord.example/hook", *saved.DiscordWebhook)
	}
	// untouched fields keep their defaults
	assert.True(t, saved.OnNewPost)
	assert.Equal(t, 587, saved.SMTPPort)
}
