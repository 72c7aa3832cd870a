package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/pushp314/feedflow-backend/pkg/logger"
	"gorm.io/gorm"
)

// AdminListMembers returns all users with their content counts.
func AdminListMembers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}

	for i := range users {
		database.DB.Model(&models.Post{}).Where("author_id = ?", users[i].ID).Count(&users[i].Count.Posts)
		database.DB.Model(&models.Vote{}).Where("user_id = ?", users[i].ID).Count(&users[i].Count.Votes)
		database.DB.Model(&models.Comment{}).Where("author_id = ?", users[i].ID).Count(&users[i].Count.Comments)
	}

	c.JSON(http.StatusOK, users)
}

// AdminUpdateMember toggles role or ban flag. Admins can never act on
// their own record.
func AdminUpdateMember(c *gin.Context) {
	memberID := c.Param("id")
	adminID := getAdminID(c)

	if adminID == memberID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot modify yourself"})
		return
	}

	var input struct {
		Role   *string `json:"role"`
		Banned *bool   `json:"banned"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", memberID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	updates := map[string]interface{}{}
	if input.Role != nil {
		if *input.Role != string(models.RoleUser) && *input.Role != string(models.RoleAdmin) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Valid: USER, ADMIN"})
			return
		}
		updates["role"] = *input.Role
	}
	if input.Banned != nil {
		updates["banned"] = *input.Banned
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
			return
		}
	}

	logAdminAction(database.DB, adminID, models.ActionManageMember, memberID, "member", "Member updated")
	logger.Info().Str("member_id", memberID).Str("admin_id", adminID).Msg("member updated")

	c.JSON(http.StatusOK, user)
}

// AdminDeleteMember removes a user and their owned content.
func AdminDeleteMember(c *gin.Context) {
	memberID := c.Param("id")
	adminID := getAdminID(c)

	if adminID == memberID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete yourself"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", memberID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	// Votes on other people's posts have to release their counters before
	// the rows go away, so the counter invariant holds after deletion.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var votes []models.Vote
		if err := tx.Where("user_id = ?", memberID).Find(&votes).Error; err != nil {
			return err
		}
		for _, v := range votes {
			if err := tx.Model(&models.Post{}).Where("id = ?", v.PostID).
				UpdateColumn("vote_count", gorm.Expr("vote_count - ?", 1)).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", memberID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", memberID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		var posts []models.Post
		if err := tx.Where("author_id = ?", memberID).Find(&posts).Error; err != nil {
			return err
		}
		for _, p := range posts {
			if err := tx.Where("post_id = ?", p.ID).Delete(&models.Vote{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id = ?", p.ID).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM post_tags WHERE post_id = ?", p.ID).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("author_id = ?", memberID).Delete(&models.Post{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		return
	}

	go database.CacheInvalidate("posts:*")

	logAdminAction(database.DB, adminID, models.ActionDeleteMember, memberID, "member", "Member deleted")
	logger.Warn().Str("member_id", memberID).Str("admin_id", adminID).Msg("member deleted")

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
