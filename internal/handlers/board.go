package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/pushp314/feedflow-backend/pkg/utils"
)

// ListBoards returns all boards ordered by position, with post counts.
func ListBoards(c *gin.Context) {
	var boards []models.Board
	if err := database.DB.Order("position ASC").Find(&boards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch boards"})
		return
	}

	for i := range boards {
		database.DB.Model(&models.Post{}).
			Where("board_id = ?", boards[i].ID).
			Count(&boards[i].PostCount)
	}

	c.JSON(http.StatusOK, boards)
}

// CreateBoard adds a board at the end of the list.
func CreateBoard(c *gin.Context) {
	adminID := getAdminID(c)

	var input struct {
		Name  string `json:"name" binding:"required"`
		Icon  string `json:"icon"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	slug := utils.UniqueSlug(utils.Slugify(input.Name), func(s string) bool {
		var count int64
		database.DB.Model(&models.Board{}).Where("slug = ?", s).Count(&count)
		return count > 0
	})

	var maxPos struct{ Max int }
	database.DB.Model(&models.Board{}).Select("COALESCE(MAX(position), -1) as max").Scan(&maxPos)

	board := models.Board{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(input.Name),
		Slug:     slug,
		Position: maxPos.Max + 1,
	}
	if input.Icon != "" {
		board.Icon = &input.Icon
	}
	if input.Color != "" {
		board.Color = &input.Color
	}

	if err := database.DB.Create(&board).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create board"})
		return
	}

	logAdminAction(database.DB, adminID, models.ActionManageBoard, board.ID, "board", "Board created: "+board.Name)

	c.JSON(http.StatusCreated, board)
}

// UpdateBoard edits name, icon and color.
func UpdateBoard(c *gin.Context) {
	boardID := c.Param("id")
	adminID := getAdminID(c)

	var input struct {
		Name  string `json:"name" binding:"required"`
		Icon  string `json:"icon"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	var board models.Board
	if err := database.DB.First(&board, "id = ?", boardID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	board.Name = strings.TrimSpace(input.Name)
	board.Icon, board.Color = nil, nil
	if input.Icon != "" {
		board.Icon = &input.Icon
	}
	if input.Color != "" {
		board.Color = &input.Color
	}

	if err := database.DB.Save(&board).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board"})
		return
	}

	logAdminAction(database.DB, adminID, models.ActionManageBoard, board.ID, "board", "Board updated: "+board.Name)

	c.JSON(http.StatusOK, board)
}

// DeleteBoard removes a board. Refused with a conflict while posts still
// reference it; the count is part of the message.
func DeleteBoard(c *gin.Context) {
	boardID := c.Param("id")
	adminID := getAdminID(c)

	var board models.Board
	if err := database.DB.First(&board, "id = ?", boardID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	var postCount int64
	database.DB.Model(&models.Post{}).Where("board_id = ?", boardID).Count(&postCount)
	if postCount > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error": fmt.Sprintf("Cannot delete: %d post(s) are linked to this board.", postCount),
		})
		return
	}

	if err := database.DB.Delete(&board).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete board"})
		return
	}

	logAdminAction(database.DB, adminID, models.ActionManageBoard, boardID, "board", "Board deleted: "+board.Name)

	c.Status(http.StatusNoContent)
}
