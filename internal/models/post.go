package models

import "time"

type Post struct {
	ID      string  `gorm:"primaryKey;type:text" json:"id"`
	Title   string  `gorm:"not null" json:"title"`
	Content *string `gorm:"type:text" json:"content"`
	Slug    string  `gorm:"uniqueIndex" json:"slug"`

	BoardID string `gorm:"index;not null" json:"boardId"`
	Board   Board  `gorm:"foreignKey:BoardID" json:"board"`

	StatusID string `gorm:"index;not null" json:"statusId"`
	Status   Status `gorm:"foreignKey:StatusID" json:"status"`

	AuthorID string `gorm:"index;not null" json:"authorId"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`

	Tags []Tag `gorm:"many2many:post_tags" json:"tags"`

	// Denormalized counter, kept in sync with the votes table inside the
	// same transaction as every vote insert/delete
	VoteCount int `gorm:"default:0" json:"voteCount"`

	IsPinned bool       `gorm:"default:false" json:"isPinned"`
	Eta      *time.Time `json:"eta"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Virtual fields for the current caller
	HasVoted     bool  `gorm:"-" json:"hasVoted"`
	CommentCount int64 `gorm:"-" json:"commentCount"`
}

// Vote marks that a user voted on a post. Presence is the signal; there is
// no weight or direction.
type Vote struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	PostID    string    `gorm:"uniqueIndex:idx_post_user;not null" json:"postId"`
	UserID    string    `gorm:"uniqueIndex:idx_post_user;not null" json:"userId"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
