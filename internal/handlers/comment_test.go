package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateComment_OnMissingPost(t *testing.T) {
	SetupTestDB()

	database.DB.Create(&models.User{ID: "user_cm1", Name: "Commenter", Email: "cm1@example.com"})

	c, w := testContext("POST", "/uri", map[string]string{"content": "hello"})
	c.Params = gin.Params{{Key: "id", Value: "no_such_post_cm1"}}
	c.Set("userId", "user_cm1")
	CreateComment(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListComments_PinnedFirstThenOldest(t *testing.T) {
	SetupTestDB()

	_, _, _, post := seedPostFixture(t, "cm2")

	database.DB.Create(&models.Comment{ID: "cm2_old", Content: "first", PostID: post.ID, AuthorID: "user_cm2"})
	database.DB.Create(&models.Comment{ID: "cm2_new", Content: "second", PostID: post.ID, AuthorID: "user_cm2"})
	database.DB.Create(&models.Comment{ID: "cm2_pinned", Content: "pinned", PostID: post.ID, AuthorID: "user_cm2", IsPinned: true})

	c, w := testContext("GET", "/uri", nil)
	c.Params = gin.Params{{Key: "id", Value: post.ID}}
	ListComments(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var comments []models.Comment
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	if assert.Len(t, comments, 3) {
		assert.Equal(t, "cm2_pinned", comments[0].ID)
		assert.Equal(t, "cm2_old", comments[1].ID)
		assert.Equal(t, "cm2_new", comments[2].ID)
	}
}

func TestCreateComment_CountsOnPost(t *testing.T) {
	SetupTestDB()

	user, _, _, post := seedPostFixture(t, "cm3")

	c, w := testContext("POST", "/uri", map[string]string{"content": "note to self"})
	c.Params = gin.Params{{Key: "id", Value: post.ID}}
	c.Set("userId", user.ID)
	CreateComment(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = testContext("GET", "/uri", nil)
	c.Params = gin.Params{{Key: "id", Value: post.Slug}}
	GetPost(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"commentCount":1`)
}
