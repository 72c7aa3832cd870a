package models

import "time"

type Comment struct {
	ID      string `gorm:"primaryKey;type:text" json:"id"`
	Content string `gorm:"type:text;not null" json:"content"`

	PostID string `gorm:"index;not null" json:"postId"`

	AuthorID string `gorm:"index;not null" json:"authorId"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`

	IsPinned  bool      `gorm:"default:false" json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
}
