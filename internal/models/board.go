package models

import "time"

type Board struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Slug      string    `gorm:"uniqueIndex" json:"slug"`
	Icon      *string   `json:"icon"`
	Color     *string   `json:"color"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `json:"createdAt"`

	// Virtual count for the admin boards manager
	PostCount int64 `gorm:"-" json:"postCount"`
}
