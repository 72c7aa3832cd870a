package handlers

import (
	"net/http"
	"testing"

	"github.com/pushp314/feedflow-backend/internal/config"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRegister_DuplicateEmail(t *testing.T) {
	SetupTestDB()

	body := map[string]string{
		"name":     "First",
		"email":    "dup_au1@example.com",
		"password": "password123",
	}

	c, w := testContext("POST", "/uri", body)
	Register(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = testContext("POST", "/uri", body)
	Register(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegister_AdminAllowList(t *testing.T) {
	SetupTestDB()

	prev := config.AppConfig.AdminEmails
	config.AppConfig.AdminEmails = "boss@example.com, other@example.com"
	defer func() { config.AppConfig.AdminEmails = prev }()

	c, w := testContext("POST", "/uri", map[string]string{
		"name":     "Boss",
		"email":    "Boss@Example.com",
		"password": "password123",
	})
	Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	database.DB.Where("email = ?", "Boss@Example.com").First(&user)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestRegister_RegularUserRole(t *testing.T) {
	SetupTestDB()

	c, w := testContext("POST", "/uri", map[string]string{
		"name":     "Regular",
		"email":    "regular_au3@example.com",
		"password": "password123",
	})
	Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	database.DB.Where("email = ?", "regular_au3@example.com").First(&user)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	SetupTestDB()

	c, w := testContext("POST", "/uri", map[string]string{
		"name":     "Victim",
		"email":    "victim_au4@example.com",
		"password": "password123",
	})
	Register(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = testContext("POST", "/uri", map[string]string{
		"email":    "victim_au4@example.com",
		"password": "wrong-password",
	})
	Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLogin_Success(t *testing.T) {
	SetupTestDB()

	c, w := testContext("POST", "/uri", map[string]string{
		"name":     "Login",
		"email":    "login_au5@example.com",
		"password": "password123",
	})
	Register(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = testContext("POST", "/uri", map[string]string{
		"email":    "login_au5@example.com",
		"password": "password123",
	})
	Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
}
