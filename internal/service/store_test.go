package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teka-app/teka/internal/logger"
	"github.com/teka-app/teka/internal/seed"
	"github.com/teka-app/teka/internal/storage"
)

func TestNewIDIsStrictlyIncreasing(t *testing.T) {
	prev := int64(0)
	for i := 0; i < 1000; i++ {
		n, err := strconv.ParseInt(newID(), 10, 64)
		require.NoError(t, err)
		assert.Greater(t, n, prev)
		prev = n
	}
}

func TestLoadOrSeedResetsCorruptSlot(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Put("recipes", []byte("{{{")))

	slot := storage.NewSlot[[]string](store, "recipes")
	value, err := loadOrSeed(slot, func() []string { return []string{"a", "b"} }, logger.For("test"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, value)

	// The reset seed is written back.
	reloaded, ok, err := slot.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, reloaded)
}

func TestLoadOrSeedKeepsExistingData(t *testing.T) {
	store := storage.NewMemory()
	slot := storage.NewSlot[[]string](store, "names")
	require.NoError(t, slot.Save([]string{"kept"}))

	value, err := loadOrSeed(slot, func() []string { return []string{"seeded"} }, logger.For("test"))
	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, value)
}

func TestSeedDatasets(t *testing.T) {
	recipes := seed.Recipes()
	require.Len(t, recipes, 8)
	seen := make(map[string]bool, len(recipes))
	for _, r := range recipes {
		assert.False(t, seen[r.ID], "duplicate seed id %s", r.ID)
		seen[r.ID] = true
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.Ingredients)
		assert.Positive(t, r.CookingTime)
		assert.Positive(t, r.Servings)
	}

	assert.Empty(t, seed.Users())
	assert.Empty(t, seed.Favorites())
	assert.Empty(t, seed.MealPlan())
	assert.Len(t, seed.Collections(), 2)
	assert.Len(t, seed.BlogPosts(), 4)
}
