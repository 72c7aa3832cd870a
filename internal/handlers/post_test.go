package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedPostFixture(t *testing.T, suffix string) (models.User, models.Board, models.Status, models.Post) {
	t.Helper()

	user := models.User{ID: "user_" + suffix, Name: "Tester " + suffix, Email: suffix + "@example.com"}
	database.DB.Create(&user)

	board := models.Board{ID: "board_" + suffix, Name: "Board " + suffix, Slug: "board-" + suffix}
	database.DB.Create(&board)

	status := models.Status{ID: "status_" + suffix, Name: "In Review", Color: "#f59e0b", Type: models.StatusTypeReviewing}
	database.DB.Create(&status)

	post := models.Post{
		ID:       "post_" + suffix,
		Title:    "Post " + suffix,
		Slug:     "post-" + suffix,
		BoardID:  board.ID,
		StatusID: status.ID,
		AuthorID: user.ID,
	}
	database.DB.Create(&post)

	return user, board, status, post
}

func TestToggleVote_AddAndRemove(t *testing.T) {
	SetupTestDB()

	user, _, _, post := seedPostFixture(t, "tv1")

	// vote on
	c, w := testContext("POST", "/uri", nil)
	c.Params = gin.Params{{Key: "id", Value: post.ID}}
	c.Set("userId", user.ID)
	ToggleVote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"voted":true`)

	var reloaded models.Post
	database.DB.First(&reloaded, "id = ?", post.ID)
	assert.Equal(t, 1, reloaded.VoteCount)

	var voteRows int64
	database.DB.Model(&models.Vote{}).Where("post_id = ?", post.ID).Count(&voteRows)
	assert.Equal(t, int64(1), voteRows)

	// vote off returns everything to the initial state
	c, w = testContext("POST", "/uri", nil)
	c.Params = gin.Params{{Key: "id", Value: post.ID}}
	c.Set("userId", user.ID)
	ToggleVote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"voted":false`)

	database.DB.First(&reloaded, "id = ?", post.ID)
	assert.Equal(t, 0, reloaded.VoteCount)

	database.DB.Model(&models.Vote{}).Where("post_id = ?", post.ID).Count(&voteRows)
	assert.Equal(t, int64(0), voteRows)
}

func TestToggleVote_CounterMatchesVoteRows(t *testing.T) {
	SetupTestDB()

	_, _, _, post := seedPostFixture(t, "tv2")

	voters := []string{"tv2_a", "tv2_b", "tv2_c"}
	for _, id := range voters {
		database.DB.Create(&models.User{ID: id, Name: id, Email: id + "@example.com"})
		c, _ := testContext("POST", "/uri", nil)
		c.Params = gin.Params{{Key: "id", Value: post.ID}}
		c.Set("userId", id)
		ToggleVote(c)
	}

	var reloaded models.Post
	database.DB.First(&reloaded, "id = ?", post.ID)

	var voteRows int64
	database.DB.Model(&models.Vote{}).Where("post_id = ?", post.ID).Count(&voteRows)

	assert.Equal(t, int64(reloaded.VoteCount), voteRows)
	assert.Equal(t, 3, reloaded.VoteCount)
}

func TestToggleVote_UnknownPostFails(t *testing.T) {
	SetupTestDB()

	database.DB.Create(&models.User{ID: "user_tv3", Name: "Voter", Email: "tv3@example.com"})

	c, w := testContext("POST", "/uri", nil)
	c.Params = gin.Params{{Key: "id", Value: "no-such-post"}}
	c.Set("userId", "user_tv3")
	ToggleVote(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var voteRows int64
	database.DB.Model(&models.Vote{}).Where("post_id = ?", "no-such-post").Count(&voteRows)
	assert.Equal(t, int64(0), voteRows)
}

// A second toggle can land after the vote row was already removed by a
// request that looked it up at the same time. The late request must not
// decrement the counter for a row it did not delete.
func TestToggleVote_StaleRemovalDoesNotDecrement(t *testing.T) {
	SetupTestDB()

	user, _, _, post := seedPostFixture(t, "tv4")
	database.DB.Create(&models.Vote{ID: "vote_tv4", PostID: post.ID, UserID: user.ID})
	database.DB.Model(&models.Post{}).Where("id = ?", post.ID).Update("vote_count", 1)

	// Yank the vote row out from under the handler between its lookup and
	// its delete, the same window a concurrent un-vote commits in.
	fired := false
	database.DB.Callback().Delete().Before("gorm:delete").Register("yank_vote", func(db *gorm.DB) {
		if fired || db.Statement.Schema == nil || db.Statement.Schema.Table != "votes" {
			return
		}
		fired = true
		db.Statement.ConnPool.ExecContext(db.Statement.Context,
			"DELETE FROM votes WHERE id = ?", "vote_tv4")
	})
	defer database.DB.Callback().Delete().Remove("yank_vote")

	c, w := testContext("POST", "/uri", nil)
	c.Params = gin.Params{{Key: "id", Value: post.ID}}
	c.Set("userId", user.ID)
	ToggleVote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"voted":false`)

	// The zero-row delete rolled back, so neither the counter nor the
	// vote set moved and they still agree.
	var reloaded models.Post
	database.DB.First(&reloaded, "id = ?", post.ID)
	var voteRows int64
	database.DB.Model(&models.Vote{}).Where("post_id = ?", post.ID).Count(&voteRows)
	assert.Equal(t, int64(reloaded.VoteCount), voteRows)
	assert.Equal(t, 1, reloaded.VoteCount)
}

func TestVoteThreshold_FiresOnExactCrossingOnly(t *testing.T) {
	SetupTestDB()

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	webhook := srv.URL
	database.DB.Save(&models.NotificationSettings{
		ID:              models.SettingsID,
		DiscordEnabled:  true,
		DiscordWebhook:  &webhook,
		OnVoteThreshold: true,
		VoteThreshold:   2,
	})
	defer database.DB.Delete(&models.NotificationSettings{}, "id = ?", models.SettingsID)

	_, _, _, post := seedPostFixture(t, "th1")

	vote := func(userID string) {
		c, _ := testContext("POST", "/uri", nil)
		c.Params = gin.Params{{Key: "id", Value: post.ID}}
		c.Set("userId", userID)
		ToggleVote(c)
	}

	for _, id := range []string{"th1_a", "th1_b", "th1_c"} {
		database.DB.Create(&models.User{ID: id, Name: id, Email: id + "@example.com"})
	}

	vote("th1_a") // 1: below threshold, silent
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))

	vote("th1_b") // 2: exactly on threshold, fires
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	vote("th1_c") // 3: past threshold, silent
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	vote("th1_c") // toggle off, back to 2: removal never notifies
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	vote("th1_c") // back to 3, above threshold, silent
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	// drop below the threshold and climb back over it
	vote("th1_a") // toggle off: 2
	vote("th1_b") // toggle off: 1
	vote("th1_b") // toggle on: 2, exact crossing fires again
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestCreatePost_SlugProbing(t *testing.T) {
	SetupTestDB()

	user := models.User{ID: "user_cp1", Name: "Poster", Email: "cp1@example.com"}
	database.DB.Create(&user)
	board := models.Board{ID: "board_cp1", Name: "Ideas CP1", Slug: "ideas-cp1"}
	database.DB.Create(&board)
	database.DB.Create(&models.Status{ID: "status_cp1", Name: "Reviewing", Type: models.StatusTypeReviewing, Position: 0})

	create := func() *httptest.ResponseRecorder {
		c, w := testContext("POST", "/uri", map[string]interface{}{
			"title":   "Dark Mode CP One",
			"boardId": board.ID,
		})
		c.Set("userId", user.ID)
		CreatePost(c)
		return w
	}

	w := create()
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"dark-mode-cp-one"`)

	w = create()
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"dark-mode-cp-one-1"`)
}

func TestUpdatePost_AuthorCannotTouchAdminFields(t *testing.T) {
	SetupTestDB()

	user, _, _, post := seedPostFixture(t, "up1")
	database.DB.Create(&models.Status{ID: "status_up1_done", Name: "Done", Type: models.StatusTypeCompleted})

	statusID := "status_up1_done"
	c, w := testContext("PATCH", "/uri", map[string]interface{}{"statusId": statusID})
	c.Params = gin.Params{{Key: "id", Value: post.ID}}
	c.Set("userId", user.ID)
	c.Set("userRole", string(models.RoleUser))
	UpdatePost(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var reloaded models.Post
	database.DB.First(&reloaded, "id = ?", post.ID)
	assert.Equal(t, post.StatusID, reloaded.StatusID)
}

func TestUpdatePost_NonAuthorForbidden(t *testing.T) {
	SetupTestDB()

	_, _, _, post := seedPostFixture(t, "up2")
	database.DB.Create(&models.User{ID: "user_up2_other", Name: "Other", Email: "up2other@example.com"})

	c, w := testContext("PATCH", "/uri", map[string]interface{}{"title": "Hijacked"})
	c.Params = gin.Params{{Key: "id", Value: post.ID}}
	c.Set("userId", "user_up2_other")
	c.Set("userRole", string(models.RoleUser))
	UpdatePost(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdatePost_AdminStatusChangeIsAudited(t *testing.T) {
	SetupTestDB()

	_, _, _, post := seedPostFixture(t, "up3")
	database.DB.Create(&models.User{ID: "admin_up3", Name: "Admin", Email: "up3admin@example.com", Role: models.RoleAdmin})
	database.DB.Create(&models.Status{ID: "status_up3_done", Name: "Shipped", Type: models.StatusTypeCompleted})

	c, w := testContext("PATCH", "/uri", map[string]interface{}{"statusId": "status_up3_done"})
	c.Params = gin.Params{{Key: "id", Value: post.ID}}
	c.Set("userId", "admin_up3")
	c.Set("userRole", string(models.RoleAdmin))
	UpdatePost(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Post
	database.DB.First(&reloaded, "id = ?", post.ID)
	assert.Equal(t, "status_up3_done", reloaded.StatusID)

	var audits int64
	database.DB.Model(&models.AdminAction{}).
		Where("admin_id = ? AND action = ? AND target_id = ?", "admin_up3", models.ActionSetStatus, post.ID).
		Count(&audits)
	assert.Equal(t, int64(1), audits)
}
