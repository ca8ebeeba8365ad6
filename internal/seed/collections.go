package seed

import (
	"time"

	"github.com/teka-app/teka/internal/models"
)

// Collections returns the two system-created default collections.
func Collections() []models.Collection {
	now := time.Now().UTC()
	return []models.Collection{
		{
			ID:          "favorites",
			Name:        "My Favorites",
			Description: "My favorite recipes",
			RecipeIDs:   []string{},
			CreatedAt:   now,
			CreatedBy:   models.SystemUser,
		},
		{
			ID:          "to-try",
			Name:        "Want to Try",
			Description: "Recipes I want to try soon",
			RecipeIDs:   []string{},
			CreatedAt:   now,
			CreatedBy:   models.SystemUser,
		},
	}
}
