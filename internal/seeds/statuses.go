package seeds

import (
	"log"

	"github.com/google/uuid"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
)

// SeedStatuses creates the pipeline stages once. Position defines the
// roadmap column order.
func SeedStatuses() {
	var count int64
	database.DB.Model(&models.Status{}).Count(&count)
	if count > 0 {
		log.Println("Statuses already seeded, skipping.")
		return
	}

	statuses := []models.Status{
		{Name: "In Review", Color: "#71717a", Type: models.StatusTypeReviewing, Position: 0},
		{Name: "Planned", Color: "#3b82f6", Type: models.StatusTypeUnstarted, Position: 1},
		{Name: "In Progress", Color: "#f59e0b", Type: models.StatusTypeActive, Position: 2},
		{Name: "Completed", Color: "#22c55e", Type: models.StatusTypeCompleted, Position: 3},
		{Name: "Canceled", Color: "#ef4444", Type: models.StatusTypeCanceled, Position: 4},
	}

	for _, s := range statuses {
		s.ID = uuid.New().String()
		if err := database.DB.Create(&s).Error; err != nil {
			log.Printf("Failed to seed status %s: %v", s.Name, err)
		}
	}

	log.Println("Seeded statuses.")
}
