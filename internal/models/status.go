package models

// StatusType is the coarse bucket a pipeline stage belongs to. The roadmap
// groups columns by position, not type, so these are informational.
type StatusType string

const (
	StatusTypeReviewing StatusType = "REVIEWING"
	StatusTypeUnstarted StatusType = "UNSTARTED"
	StatusTypeActive    StatusType = "ACTIVE"
	StatusTypeCompleted StatusType = "COMPLETED"
	StatusTypeCanceled  StatusType = "CANCELED"
)

// Status is a pipeline stage. Reference data seeded at setup; any status may
// move to any other status, there is no transition graph.
type Status struct {
	ID       string     `gorm:"primaryKey;type:text" json:"id"`
	Name     string     `gorm:"not null" json:"name"`
	Color    string     `json:"color"`
	Type     StatusType `gorm:"type:text" json:"type"`
	Position int        `gorm:"default:0" json:"position"`
}
