package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/feedflow-backend/internal/config"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/pushp314/feedflow-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupAuthTest() {
	db, _ := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	database.DB = db
	database.Redis = nil
	database.DB.AutoMigrate(&models.User{})

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	}

	gin.SetMode(gin.TestMode)
}

func runAuth(token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/uri", nil)
	if token != "" {
		c.Request.Header.Set("Authorization", "Bearer "+token)
	}
	AuthMiddleware()(c)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	setupAuthTest()

	w := runAuth("")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	setupAuthTest()

	w := runAuth("not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthMiddleware_BannedUser(t *testing.T) {
	setupAuthTest()

	database.DB.Create(&models.User{ID: "mw_banned", Name: "Banned", Email: "mwbanned@example.com", Banned: true})

	token, err := utils.GenerateToken("mw_banned")
	assert.NoError(t, err)

	w := runAuth(token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"banned"`)
}

func TestAuthMiddleware_ValidUserPasses(t *testing.T) {
	setupAuthTest()

	database.DB.Create(&models.User{ID: "mw_ok", Name: "OK", Email: "mwok@example.com", Role: models.RoleAdmin})

	token, err := utils.GenerateToken("mw_ok")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/uri", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)
	AuthMiddleware()(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, "mw_ok", c.GetString("userId"))
	assert.Equal(t, string(models.RoleAdmin), c.GetString("userRole"))
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	setupAuthTest()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/uri", nil)
	OptionalAuthMiddleware()(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, "", c.GetString("userId"))
}
