package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/pushp314/feedflow-backend/internal/config"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
	"github.com/pushp314/feedflow-backend/internal/seeds"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("🔄 Running migrations (just in case)...")
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

	log.Println("🌱 Seeding Boards...")
	seeds.SeedBoards()

	log.Println("🌱 Seeding Statuses...")
	seeds.SeedStatuses()

	log.Println("🌱 Seeding Changelog Categories...")
	seeds.SeedChangelogCategories()

	log.Println("⚙️  Ensuring notification settings row...")
	settings := models.DefaultNotificationSettings()
	database.DB.Where("id = ?", models.SettingsID).FirstOrCreate(&settings)

	log.Println("👤 Checking for an admin user...")
	var admin models.User
	if err := database.DB.Where("role = ?", models.RoleAdmin).First(&admin).Error; err != nil {
		log.Println("⚠️ No ADMIN found. Creating a fallback admin...")
		hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		admin = models.User{
			ID:       uuid.New().String(),
			Name:     "Admin",
			Email:    "admin@feedflow.app",
			Password: string(hash),
			Role:     models.RoleAdmin,
		}
		database.DB.Create(&admin)
		log.Println("👉 Fallback admin: admin@feedflow.app / password123 (change it!)")
	}

	log.Println("✅ Seeding Complete!")
}
