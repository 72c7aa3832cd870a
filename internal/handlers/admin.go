package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/pushp314/feedflow-backend/pkg/utils"
	"gorm.io/gorm"
)

func logAdminAction(tx *gorm.DB, adminID string, action models.ActionType, targetID, targetType, reason string) error {
	audit := models.AdminAction{
		ID:         utils.GenerateID(),
		AdminID:    adminID,
		Action:     action,
		TargetID:   targetID,
		TargetType: targetType,
		Reason:     reason,
		CreatedAt:  time.Now(),
	}
	return tx.Create(&audit).Error
}

func getAdminID(c *gin.Context) string {
	val, exists := c.Get("userId")
	if !exists {
		return ""
	}
	return val.(string)
}
