package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/pushp314/feedflow-backend/internal/services"
)

// ListComments returns a post's comments, pinned first then oldest first.
func ListComments(c *gin.Context) {
	postID := c.Param("id")

	var comments []models.Comment
	if err := database.DB.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("is_pinned DESC, created_at ASC").
		Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// CreateComment adds a comment. Commenting on someone else's post notifies
// the post author by email.
func CreateComment(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	postID := c.Param("id")

	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	var post models.Post
	if err := database.DB.Preload("Author").First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	comment := models.Comment{
		ID:       uuid.New().String(),
		Content:  input.Content,
		PostID:   postID,
		AuthorID: userID,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	database.DB.Preload("Author").First(&comment, "id = ?", comment.ID)

	if post.AuthorID != userID {
		services.NotifyNewComment(&post, comment.Author.Name, post.Author.Email)
	}

	c.JSON(http.StatusCreated, comment)
}
