package models

import "time"

type ActionType string

const (
	ActionSetStatus      ActionType = "SET_STATUS"
	ActionPinPost        ActionType = "PIN_POST"
	ActionDeletePost     ActionType = "DELETE_POST"
	ActionManageBoard    ActionType = "MANAGE_BOARD"
	ActionManageTag      ActionType = "MANAGE_TAG"
	ActionManageMember   ActionType = "MANAGE_MEMBER"
	ActionDeleteMember   ActionType = "DELETE_MEMBER"
	ActionCreateAPIKey   ActionType = "CREATE_API_KEY"
	ActionRevokeAPIKey   ActionType = "REVOKE_API_KEY"
	ActionUpdateSettings ActionType = "UPDATE_SETTINGS"
	ActionManageRelease  ActionType = "MANAGE_RELEASE"
	ActionManageCategory ActionType = "MANAGE_CATEGORY"
)

// AdminAction is the audit trail for admin mutations.
type AdminAction struct {
	ID         string     `gorm:"primaryKey;type:text" json:"id"`
	AdminID    string     `gorm:"index" json:"adminId"`
	Action     ActionType `json:"action"`
	TargetID   string     `json:"targetId"`
	TargetType string     `json:"targetType"` // "post", "board", "member", ...
	Reason     string     `json:"reason"`
	CreatedAt  time.Time  `json:"createdAt"`

	Admin User `gorm:"foreignKey:AdminID" json:"admin"`
}
