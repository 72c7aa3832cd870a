package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAdminUpdateMember_CannotModifySelf(t *testing.T) {
	SetupTestDB()

	database.DB.Create(&models.User{ID: "admin_am1", Name: "Admin", Email: "am1@example.com", Role: models.RoleAdmin})

	banned := true
	c, w := testContext("PATCH", "/uri", map[string]interface{}{"banned": banned})
	c.Params = gin.Params{{Key: "id", Value: "admin_am1"}}
	c.Set("userId", "admin_am1")
	AdminUpdateMember(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot modify yourself")

	var user models.User
	database.DB.First(&user, "id = ?", "admin_am1")
	assert.False(t, user.Banned)
}

func TestAdminUpdateMember_InvalidRole(t *testing.T) {
	SetupTestDB()

	database.DB.Create(&models.User{ID: "user_am2", Name: "Member", Email: "am2@example.com"})

	c, w := testContext("PATCH", "/uri", map[string]interface{}{"role": "SUPERUSER"})
	c.Params = gin.Params{{Key: "id", Value: "user_am2"}}
	c.Set("userId", "admin_am2")
	AdminUpdateMember(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid role")
}

func TestAdminUpdateMember_BanAndPromote(t *testing.T) {
	SetupTestDB()

	database.DB.Create(&models.User{ID: "user_am3", Name: "Member", Email: "am3@example.com"})

	c, w := testContext("PATCH", "/uri", map[string]interface{}{"role": "ADMIN", "banned": true})
	c.Params = gin.Params{{Key: "id", Value: "user_am3"}}
	c.Set("userId", "admin_am3")
	AdminUpdateMember(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var user models.User
	database.DB.First(&user, "id = ?", "user_am3")
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.True(t, user.Banned)
}

func TestAdminDeleteMember_ReleasesVoteCounters(t *testing.T) {
	SetupTestDB()

	// owner keeps a post; the deleted member voted on it
	database.DB.Create(&models.User{ID: "owner_am4", Name: "Owner", Email: "am4owner@example.com"})
	database.DB.Create(&models.User{ID: "member_am4", Name: "Member", Email: "am4member@example.com"})
	database.DB.Create(&models.Board{ID: "board_am4", Name: "Board AM4", Slug: "board-am4"})
	database.DB.Create(&models.Status{ID: "status_am4", Name: "Open", Type: models.StatusTypeReviewing})

	database.DB.Create(&models.Post{
		ID: "post_am4_owner", Title: "Owner post", Slug: "post-am4-owner",
		BoardID: "board_am4", StatusID: "status_am4", AuthorID: "owner_am4",
		VoteCount: 1,
	})
	database.DB.Create(&models.Vote{ID: "vote_am4", PostID: "post_am4_owner", UserID: "member_am4"})

	// the member also owns a post with a comment on it
	database.DB.Create(&models.Post{
		ID: "post_am4_member", Title: "Member post", Slug: "post-am4-member",
		BoardID: "board_am4", StatusID: "status_am4", AuthorID: "member_am4",
	})
	database.DB.Create(&models.Comment{ID: "comment_am4", Content: "hi", PostID: "post_am4_member", AuthorID: "owner_am4"})

	c, w := testContext("DELETE", "/uri", nil)
	c.Params = gin.Params{{Key: "id", Value: "member_am4"}}
	c.Set("userId", "admin_am4")
	AdminDeleteMember(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var userCount int64
	database.DB.Model(&models.User{}).Where("id = ?", "member_am4").Count(&userCount)
	assert.Equal(t, int64(0), userCount)

	// the owner's counter released the member's vote
	var ownerPost models.Post
	database.DB.First(&ownerPost, "id = ?", "post_am4_owner")
	assert.Equal(t, 0, ownerPost.VoteCount)

	// the member's own content is gone, including comments by others on it
	var postCount, commentCount int64
	database.DB.Model(&models.Post{}).Where("id = ?", "post_am4_member").Count(&postCount)
	database.DB.Model(&models.Comment{}).Where("post_id = ?", "post_am4_member").Count(&commentCount)
	assert.Equal(t, int64(0), postCount)
	assert.Equal(t, int64(0), commentCount)
}

func TestAdminDeleteMember_CannotDeleteSelf(t *testing.T) {
	SetupTestDB()

	database.DB.Create(&models.User{ID: "admin_am5", Name: "Admin", Email: "am5@example.com", Role: models.RoleAdmin})

	c, w := testContext("DELETE", "/uri", nil)
	c.Params = gin.Params{{Key: "id", Value: "admin_am5"}}
	c.Set("userId", "admin_am5")
	AdminDeleteMember(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot delete yourself")
}
