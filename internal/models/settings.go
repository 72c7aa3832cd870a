package models

// SettingsID is the primary key of the single NotificationSettings row.
const SettingsID = "singleton"

// NotificationSettings is a singleton holding SMTP/Discord configuration
// and per-event toggles.
type NotificationSettings struct {
	ID string `gorm:"primaryKey;type:text" json:"id"`

	EmailEnabled bool    `gorm:"default:false" json:"emailEnabled"`
	SMTPHost     *string `gorm:"column:smtp_host" json:"smtpHost"`
	SMTPPort     int     `gorm:"column:smtp_port;default:587" json:"smtpPort"`
	SMTPUser     *string `gorm:"column:smtp_user" json:"smtpUser"`
	SMTPPass     *string `gorm:"column:smtp_pass" json:"smtpPass"`
	EmailFrom    *string `json:"emailFrom"`
	EmailTo      *string `json:"emailTo"`

	DiscordEnabled bool    `gorm:"default:false" json:"discordEnabled"`
	DiscordWebhook *string `json:"discordWebhook"`

	OnNewPost       bool `gorm:"default:true" json:"onNewPost"`
	OnStatusChange  bool `gorm:"default:true" json:"onStatusChange"`
	OnNewComment    bool `gorm:"default:false" json:"onNewComment"`
	OnVoteThreshold bool `gorm:"default:false" json:"onVoteThreshold"`
	VoteThreshold   int  `gorm:"default:10" json:"voteThreshold"`
}

// DefaultNotificationSettings returns the singleton row with defaults, used
// when nothing has been saved yet.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		ID:             SettingsID,
		SMTPPort:       587,
		OnNewPost:      true,
		OnStatusChange: true,
		VoteThreshold:  10,
	}
}
