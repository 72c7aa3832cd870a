package seeds

import (
	"log"

	"github.com/google/uuid"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
)

func strPtr(s string) *string { return &s }

// SeedBoards creates the default boards once.
func SeedBoards() {
	var count int64
	database.DB.Model(&models.Board{}).Count(&count)
	if count > 0 {
		log.Println("Boards already seeded, skipping.")
		return
	}

	boards := []models.Board{
		{Name: "Feature Requests", Slug: "feature-requests", Icon: strPtr("💡"), Position: 0},
		{Name: "Bug Reports", Slug: "bug-reports", Icon: strPtr("🐛"), Position: 1},
		{Name: "Integrations", Slug: "integrations", Icon: strPtr("🔗"), Position: 2},
	}

	for _, b := range boards {
		b.ID = uuid.New().String()
		if err := database.DB.Create(&b).Error; err != nil {
			log.Printf("Failed to seed board %s: %v", b.Name, err)
		}
	}

	log.Println("Seeded boards.")
}
