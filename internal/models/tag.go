package models

type Tag struct {
	ID    string  `gorm:"primaryKey;type:text" json:"id"`
	Name  string  `gorm:"uniqueIndex;not null" json:"name"`
	Color *string `json:"color"`
}
