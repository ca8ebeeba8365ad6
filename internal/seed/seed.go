// Package seed holds the fixed datasets installed the first time a store
// finds its slot absent. The registry of users starts empty; recipes,
// collections, and blog posts start pre-populated.
package seed

import (
	"time"

	"github.com/teka-app/teka/internal/models"
)

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Users returns the initial user registry.
func Users() []models.User {
	return []models.User{}
}

// Favorites returns the initial favorite-recipe id set.
func Favorites() []string {
	return []string{}
}

// MealPlan returns the initial weekly plan. Days materialize on first
// assignment rather than being pre-keyed.
func MealPlan() models.MealPlan {
	return models.MealPlan{}
}
