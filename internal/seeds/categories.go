package seeds

import (
	"log"

	"github.com/google/uuid"
	"github.com/pushp314/feedflow-backend/internal/database"
	"github.com/pushp314/feedflow-backend/internal/models"
)

// SeedChangelogCategories upserts the default badge categories by value.
func SeedChangelogCategories() {
	categories := []models.ChangelogCategory{
		{Value: "NEW", Label: "New", Color: "#22c55e", Position: 0},
		{Value: "IMPROVED", Label: "Improved", Color: "#8b5cf6", Position: 1},
		{Value: "FIXED", Label: "Fixed", Color: "#3b82f6", Position: 2},
		{Value: "BETA", Label: "Beta", Color: "#f97316", Position: 3},
	}

	for _, cat := range categories {
		var existing models.ChangelogCategory
		if err := database.DB.Where("value = ?", cat.Value).First(&existing).Error; err == nil {
			continue
		}
		cat.ID = uuid.New().String()
		if err := database.DB.Create(&cat).Error; err != nil {
			log.Printf("Failed to seed category %s: %v", cat.Label, err)
		}
	}

	log.Println("Seeded changelog categories.")
}
