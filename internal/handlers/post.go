package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/pushp314/feedflow-backend/internal/services"
	"github.com/pushp314/feedflow-backend/pkg/logger"
	"github.com/pushp314/feedflow-backend/pkg/utils"
	"gorm.io/gorm"
)

// ListPosts returns posts filtered by board slug, status id and title
// search, pinned first. The unfiltered first page is cached briefly with
// the caller-specific hasVoted flag stripped.
func ListPosts(c *gin.Context) {
	boardSlug := c.DefaultQuery("board", "all")
	statusID := c.Query("status")
	sort := c.DefaultQuery("sort", "trending")
	q := c.Query("q")

	cacheKey := "posts:" + boardSlug + ":" + statusID + ":" + sort
	if q == "" {
		var cached []models.Post
		if err := database.CacheGet(cacheKey, &cached); err == nil {
			if userID := c.GetString("userId"); userID != "" {
				markVotesForUser(userID, cached)
			}
			c.JSON(http.StatusOK, gin.H{"data": cached, "source": "cache"})
			return
		}
	}

	query := database.DB.Model(&models.Post{}).
		Preload("Board").Preload("Status").Preload("Tags").Preload("Author")

	if boardSlug != "" && boardSlug != "all" {
		var board models.Board
		if err := database.DB.Where("slug = ?", boardSlug).First(&board).Error; err == nil {
			query = query.Where("board_id = ?", board.ID)
		}
	}
	if statusID != "" {
		query = query.Where("status_id = ?", statusID)
	}
	if q != "" {
		query = query.Where("title LIKE ?", "%"+q+"%")
	}

	// Trending is simplified to top for now
	if sort == "new" {
		query = query.Order("is_pinned DESC, created_at DESC")
	} else {
		query = query.Order("is_pinned DESC, vote_count DESC, created_at DESC")
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	attachCommentCounts(posts)

	if q == "" {
		cachable := make([]models.Post, len(posts))
		copy(cachable, posts)
		for i := range cachable {
			cachable[i].HasVoted = false
		}
		go database.CacheSet(cacheKey, cachable, 30*time.Second)
	}

	if userID := c.GetString("userId"); userID != "" {
		markVotesForUser(userID, posts)
	}

	c.JSON(http.StatusOK, gin.H{"data": posts, "source": "db"})
}

func markVotesForUser(userID string, posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	var votedIDs []string
	database.DB.Model(&models.Vote{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &votedIDs)

	voted := make(map[string]bool, len(votedIDs))
	for _, id := range votedIDs {
		voted[id] = true
	}

	for i := range posts {
		posts[i].HasVoted = voted[posts[i].ID]
	}
}

func attachCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	var rows []struct {
		PostID string
		Count  int64
	}
	database.DB.Model(&models.Comment{}).
		Select("post_id, count(*) as count").
		Where("post_id IN ?", ids).
		Group("post_id").
		Scan(&rows)

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.PostID] = r.Count
	}
	for i := range posts {
		posts[i].CommentCount = counts[posts[i].ID]
	}
}

// CreatePost submits new feedback. Slug is derived from the title with
// numeric probing; new posts land in the first REVIEWING status.
func CreatePost(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	allowed, err := database.CheckRateLimit(userID, 1, 30*time.Second)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
		return
	}
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "You're posting too fast. Please wait 30 seconds."})
		return
	}

	var input struct {
		Title   string   `json:"title" binding:"required"`
		Content string   `json:"content"`
		BoardID string   `json:"boardId" binding:"required"`
		TagIDs  []string `json:"tagIds"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var defaultStatus models.Status
	if err := database.DB.
		Where("type = ?", models.StatusTypeReviewing).
		Order("position ASC").
		First(&defaultStatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No status configured"})
		return
	}

	slug := utils.UniqueSlug(utils.Slugify(input.Title), func(s string) bool {
		var count int64
		database.DB.Model(&models.Post{}).Where("slug = ?", s).Count(&count)
		return count > 0
	})

	post := models.Post{
		ID:       uuid.New().String(),
		Title:    input.Title,
		Slug:     slug,
		BoardID:  input.BoardID,
		StatusID: defaultStatus.ID,
		AuthorID: userID,
	}
	if input.Content != "" {
		post.Content = &input.Content
	}
	if len(input.TagIDs) > 0 {
		var tags []models.Tag
		database.DB.Where("id IN ?", input.TagIDs).Find(&tags)
		post.Tags = tags
	}

	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	database.DB.
		Preload("Board").Preload("Status").Preload("Tags").Preload("Author").
		First(&post, "id = ?", post.ID)

	go database.CacheInvalidate("posts:*")

	services.NotifyNewPost(&post)

	logger.Info().
		Str("post_id", post.ID).
		Str("slug", post.Slug).
		Str("user_id", userID).
		Str("board_id", input.BoardID).
		Msg("post created")

	c.JSON(http.StatusCreated, post)
}

// GetPost fetches a single post by slug.
func GetPost(c *gin.Context) {
	slug := c.Param("id")

	var post models.Post
	if err := database.DB.
		Preload("Board").Preload("Status").Preload("Tags").Preload("Author").
		Where("slug = ?", slug).
		First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	database.DB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&post.CommentCount)

	if userID := c.GetString("userId"); userID != "" {
		var count int64
		database.DB.Model(&models.Vote{}).
			Where("post_id = ? AND user_id = ?", post.ID, userID).
			Count(&count)
		post.HasVoted = count > 0
	}

	c.JSON(http.StatusOK, post)
}

type updatePostInput struct {
	Title    *string    `json:"title"`
	Content  *string    `json:"content"`
	StatusID *string    `json:"statusId"`
	IsPinned *bool      `json:"isPinned"`
	Eta      *time.Time `json:"eta"`
	TagIDs   *[]string  `json:"tagIds"`
}

// UpdatePost edits a post. The author may change title, content and tags;
// status, pin and ETA are admin-only. A status change notifies the author
// by email and is audited; pin toggles are audited only.
func UpdatePost(c *gin.Context) {
	userID := c.GetString("userId")
	postID := c.Param("id")
	isAdmin := c.GetString("userRole") == string(models.RoleAdmin)

	var input updatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post models.Post
	if err := database.DB.Preload("Author").First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if !isAdmin && post.AuthorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized to edit this post"})
		return
	}
	if !isAdmin && (input.StatusID != nil || input.IsPinned != nil || input.Eta != nil) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can change status, pin or ETA"})
		return
	}

	previousStatusID := post.StatusID

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.StatusID != nil {
		updates["status_id"] = *input.StatusID
	}
	if input.IsPinned != nil {
		updates["is_pinned"] = *input.IsPinned
	}
	if input.Eta != nil {
		updates["eta"] = *input.Eta
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&post).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
			return
		}
	}

	if input.TagIDs != nil {
		var tags []models.Tag
		database.DB.Where("id IN ?", *input.TagIDs).Find(&tags)
		if err := database.DB.Model(&post).Association("Tags").Replace(tags); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tags"})
			return
		}
	}

	database.DB.
		Preload("Board").Preload("Status").Preload("Tags").Preload("Author").
		First(&post, "id = ?", post.ID)

	go database.CacheInvalidate("posts:*")

	if input.StatusID != nil && *input.StatusID != previousStatusID {
		services.NotifyStatusChange(&post, &post.Status, post.Author.Email)
		logAdminAction(database.DB, userID, models.ActionSetStatus, post.ID, "post",
			"Status changed to "+post.Status.Name)
		logger.Info().
			Str("post_id", post.ID).
			Str("from_status", previousStatusID).
			Str("to_status", *input.StatusID).
			Str("admin_id", userID).
			Msg("post status changed")
	}
	if input.IsPinned != nil {
		logAdminAction(database.DB, userID, models.ActionPinPost, post.ID, "post", "Pin toggled")
		logger.Info().
			Str("post_id", post.ID).
			Bool("is_pinned", *input.IsPinned).
			Str("admin_id", userID).
			Msg("post pin toggled")
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost removes a post along with its votes and comments.
func DeletePost(c *gin.Context) {
	postID := c.Param("id")
	adminID := getAdminID(c)

	var post models.Post
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&post).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	go database.CacheInvalidate("posts:*")

	logAdminAction(database.DB, adminID, models.ActionDeletePost, postID, "post", "Post deleted")
	logger.Warn().Str("post_id", postID).Str("admin_id", adminID).Msg("post deleted")

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ToggleVote flips the caller's vote on a post. The vote row and the
// denormalized counter always move inside one transaction so the counter
// cannot drift from the vote set.
func ToggleVote(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	postID := c.Param("id")

	var vote models.Vote
	result := database.DB.Where("post_id = ? AND user_id = ?", postID, userID).First(&vote)

	tx := database.DB.Begin()

	if result.Error == gorm.ErrRecordNotFound {
		newVote := models.Vote{ID: uuid.New().String(), PostID: postID, UserID: userID}
		if err := tx.Create(&newVote).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to vote"})
			return
		}
		res := tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("vote_count", gorm.Expr("vote_count + ?", 1))
		if res.Error != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update count"})
			return
		}
		// The counter update doubles as the existence check: zero rows
		// means the post id is unknown and the vote must not land.
		if res.RowsAffected == 0 {
			tx.Rollback()
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		tx.Commit()

		go database.CacheInvalidate("posts:*")

		var post models.Post
		if err := database.DB.First(&post, "id = ?", postID).Error; err == nil {
			services.NotifyVoteThreshold(&post)
		}

		c.JSON(http.StatusOK, gin.H{"voted": true})
		return
	}

	// Conditional delete: a concurrent toggle may have removed the vote
	// after our lookup, and decrementing for a row we did not delete
	// would drift the counter below the real vote count.
	res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Vote{})
	if res.Error != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove vote"})
		return
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		c.JSON(http.StatusOK, gin.H{"voted": false})
		return
	}
	res = tx.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("vote_count", gorm.Expr("vote_count - ?", 1))
	if res.Error != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update count"})
		return
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	tx.Commit()

	go database.CacheInvalidate("posts:*")

	c.JSON(http.StatusOK, gin.H{"voted": false})
}
