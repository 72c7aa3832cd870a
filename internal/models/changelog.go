package models

import (
	"encoding/json"
	"time"
)

type ChangelogState string

const (
	ChangelogDraft ChangelogState = "DRAFT"
	ChangelogLive  ChangelogState = "LIVE"
)

// ChangelogEntry is a published update note. Categories are stored as a
// JSON-encoded string list and decoded into CategoryList for responses;
// values with no matching ChangelogCategory render with a fallback color.
type ChangelogEntry struct {
	ID            string         `gorm:"primaryKey;type:text" json:"id"`
	Title         string         `gorm:"not null" json:"title"`
	Slug          string         `gorm:"uniqueIndex" json:"slug"`
	Content       string         `gorm:"type:text" json:"content"` // HTML
	Categories    string         `gorm:"type:text;default:'[]'" json:"-"`
	FeaturedImage *string        `json:"featuredImage"`
	State         ChangelogState `gorm:"type:text;default:'DRAFT';index" json:"state"`
	PublishedAt   *time.Time     `gorm:"index" json:"publishedAt"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`

	CategoryList []string `gorm:"-" json:"categories"`
}

// DecodeCategories fills CategoryList from the stored JSON. Malformed data
// decodes to an empty list rather than failing the request.
func (e *ChangelogEntry) DecodeCategories() {
	e.CategoryList = []string{}
	if e.Categories != "" {
		_ = json.Unmarshal([]byte(e.Categories), &e.CategoryList)
	}
}

// EncodeCategories stores the list back as JSON.
func (e *ChangelogEntry) EncodeCategories(categories []string) {
	if categories == nil {
		categories = []string{}
	}
	data, _ := json.Marshal(categories)
	e.Categories = string(data)
	e.CategoryList = categories
}

// ChangelogCategory is an admin-managed badge. Entries reference it by
// value with no foreign key.
type ChangelogCategory struct {
	ID       string `gorm:"primaryKey;type:text" json:"id"`
	Value    string `gorm:"uniqueIndex;not null" json:"value"`
	Label    string `gorm:"not null" json:"label"`
	Color    string `json:"color"`
	Position int    `gorm:"default:0" json:"position"`
}
