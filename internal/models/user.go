package models

import (
	"time"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name  string `json:"name"`
	Email string `gorm:"uniqueIndex" json:"email"`

	Role   Role `gorm:"type:text;default:'USER'" json:"role"`
	Banned bool `gorm:"default:false" json:"banned"`

	// Hex color used for the avatar fallback, nil means default
	AvatarColor *string `json:"avatarColor"`
	Image       string  `json:"image"`

	Password string `json:"-"`

	Count UserCount `gorm:"-" json:"_count"`
}

// UserCount carries per-user content totals for the admin members table.
type UserCount struct {
	Posts    int64 `json:"posts"`
	Votes    int64 `json:"votes"`
	Comments int64 `json:"comments"`
}
