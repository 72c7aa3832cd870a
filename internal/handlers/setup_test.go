package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/config"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB initializes an in-memory SQLite DB for testing. The DB is
// shared across tests in the package, so every test uses unique IDs.
func SetupTestDB() {
	db, _ := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	database.DB = db
	database.Redis = nil
	database.DB.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.Status{},
		&models.Post{},
		&models.Vote{},
		&models.Comment{},
		&models.Tag{},
		&models.ChangelogEntry{},
		&models.ChangelogCategory{},
		&models.ApiKey{},
		&models.NotificationSettings{},
		&models.AdminAction{},
	)

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{
			JWTSecret:   "test-secret",
			FrontendURL: "http://localhost:3000",
		}
	}

	gin.SetMode(gin.TestMode)
}

// testContext builds a gin test context with an optional JSON body.
func testContext(method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	c.Request, _ = http.NewRequest(method, target, &buf)
	c.Request.Header.Set("Content-Type", "application/json")

	return c, w
}
