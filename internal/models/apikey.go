package models

import "time"

// ApiKey authenticates the public ingestion API. Only the SHA-256 of the
// full key is stored; the plaintext is returned once at creation and is
// unrecoverable afterwards. Prefix is kept for admin-side identification.
type ApiKey struct {
	ID      string `gorm:"primaryKey;type:text" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	KeyHash string `gorm:"uniqueIndex;not null" json:"-"`
	Prefix  string `json:"prefix"`

	CreatedByID string `gorm:"index" json:"createdById"`
	CreatedBy   User   `gorm:"foreignKey:CreatedByID" json:"createdBy"`

	ExpiresAt  *time.Time `json:"expiresAt"`
	LastUsedAt *time.Time `json:"lastUsedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}
