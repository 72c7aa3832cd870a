package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"
	"time"

	"github.com/pushp314/feedflow-backend/internal/config"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/pushp314/feedflow-backend/pkg/logger"
)

// Notification dispatch is fire-and-forget: every failure is logged and
// swallowed, nothing retries, nothing propagates to the request.

var webhookClient = &http.Client{Timeout: 5 * time.Second}

func getSettings() *models.NotificationSettings {
	var s models.NotificationSettings
	if err := database.DB.First(&s, "id = ?", models.SettingsID).Error; err != nil {
		return nil
	}
	return &s
}

func sendDiscord(webhookURL, content string) {
	payload, _ := json.Marshal(map[string]string{"content": content})
	resp, err := webhookClient.Post(webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		logger.Warn().Err(err).Msg("Discord webhook dispatch failed")
		return
	}
	resp.Body.Close()
}

func sendEmail(s *models.NotificationSettings, to, subject, html string) {
	if s.SMTPHost == nil || s.SMTPUser == nil || s.SMTPPass == nil {
		return
	}

	from := *s.SMTPUser
	if s.EmailFrom != nil && *s.EmailFrom != "" {
		from = *s.EmailFrom
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		from, to, subject, html)

	addr := fmt.Sprintf("%s:%d", *s.SMTPHost, s.SMTPPort)
	auth := smtp.PlainAuth("", *s.SMTPUser, *s.SMTPPass, *s.SMTPHost)

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(msg)); err != nil {
		logger.Warn().Err(err).Str("to", to).Msg("Email dispatch failed")
	}
}

func postURL(slug string) string {
	return fmt.Sprintf("%s/feedback/%s", config.AppConfig.FrontendURL, slug)
}

// NotifyNewPost announces a freshly submitted post to the admin channels.
func NotifyNewPost(post *models.Post) {
	s := getSettings()
	if s == nil || !s.OnNewPost {
		return
	}

	url := postURL(post.Slug)
	author := post.Author.Name
	if author == "" {
		author = "Anonymous"
	}

	if s.DiscordEnabled && s.DiscordWebhook != nil {
		sendDiscord(*s.DiscordWebhook,
			fmt.Sprintf("**New post**: [%s](%s) by **%s**", post.Title, url, author))
	}
	if s.EmailEnabled && s.EmailTo != nil {
		sendEmail(s, *s.EmailTo,
			fmt.Sprintf("New post: %s", post.Title),
			fmt.Sprintf("<p>New post submitted by <strong>%s</strong>:</p><p><a href=%q>%s</a></p>", author, url, post.Title))
	}
}

// NotifyStatusChange emails the post author about the new pipeline stage.
func NotifyStatusChange(post *models.Post, newStatus *models.Status, authorEmail string) {
	s := getSettings()
	if s == nil || !s.OnStatusChange || !s.EmailEnabled {
		return
	}

	url := postURL(post.Slug)
	sendEmail(s, authorEmail,
		fmt.Sprintf("Your post status changed to %q", newStatus.Name),
		fmt.Sprintf("<p>Your post <a href=%q><strong>%s</strong></a> has been updated to status <strong>%s</strong>.</p>",
			url, post.Title, newStatus.Name))
}

// NotifyNewComment emails the post author about a comment by someone else.
func NotifyNewComment(post *models.Post, commenterName, authorEmail string) {
	s := getSettings()
	if s == nil || !s.OnNewComment || !s.EmailEnabled {
		return
	}

	if commenterName == "" {
		commenterName = "Someone"
	}

	url := postURL(post.Slug)
	sendEmail(s, authorEmail,
		fmt.Sprintf("New comment on your post %q", post.Title),
		fmt.Sprintf("<p><strong>%s</strong> commented on your post <a href=%q><strong>%s</strong></a>.</p>",
			commenterName, url, post.Title))
}

// NotifyVoteThreshold fires when a post's count sits exactly on the
// configured threshold. Plain equality: further votes stay silent, but
// dropping below and crossing again fires again.
func NotifyVoteThreshold(post *models.Post) {
	s := getSettings()
	if s == nil || !s.OnVoteThreshold || s.VoteThreshold <= 0 {
		return
	}
	if post.VoteCount != s.VoteThreshold {
		return
	}

	url := postURL(post.Slug)
	if s.DiscordEnabled && s.DiscordWebhook != nil {
		sendDiscord(*s.DiscordWebhook,
			fmt.Sprintf("**Vote milestone**: [%s](%s) just reached **%d votes**!", post.Title, url, s.VoteThreshold))
	}
	if s.EmailEnabled && s.EmailTo != nil {
		sendEmail(s, *s.EmailTo,
			fmt.Sprintf("Post %q reached %d votes", post.Title, s.VoteThreshold),
			fmt.Sprintf("<p>The post <a href=%q><strong>%s</strong></a> just reached <strong>%d votes</strong>!</p>",
				url, post.Title, s.VoteThreshold))
	}
}
