package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teka-app/teka/internal/models"
	"github.com/teka-app/teka/internal/storage"
)

func newCollections(t *testing.T) (*CollectionService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemory()
	svc, err := NewCollectionService(store)
	require.NoError(t, err)
	return svc, store
}

func TestSeededCollections(t *testing.T) {
	svc, _ := newCollections(t)

	collections := svc.Collections()
	require.Len(t, collections, 2)
	assert.Equal(t, "favorites", collections[0].ID)
	assert.Equal(t, "to-try", collections[1].ID)
	for _, c := range collections {
		assert.Equal(t, models.SystemUser, c.CreatedBy)
		assert.Empty(t, c.RecipeIDs)
	}
}

func TestCreateCollection(t *testing.T) {
	svc, store := newCollections(t)

	created, err := svc.Create("Weeknight Dinners", "Fast and forgiving.", "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u1", created.CreatedBy)
	assert.Empty(t, created.RecipeIDs)

	reloaded, err := NewCollectionService(store)
	require.NoError(t, err)
	_, ok := reloaded.Get(created.ID)
	assert.True(t, ok)
}

func TestUpdateCollection(t *testing.T) {
	svc, _ := newCollections(t)

	created, err := svc.Create("Weeknight Dinners", "", "u1")
	require.NoError(t, err)

	name := "Weeknight Winners"
	desc := "Under thirty minutes."
	updated, err := svc.Update(created.ID, models.CollectionUpdate{Name: &name, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, desc, updated.Description)

	_, err = svc.Update("nope", models.CollectionUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestAddRecipeIsIdempotent(t *testing.T) {
	svc, _ := newCollections(t)

	created, err := svc.Create("Weeknight Dinners", "", "u1")
	require.NoError(t, err)

	c, err := svc.AddRecipe(created.ID, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, c.RecipeIDs)

	c, err = svc.AddRecipe(created.ID, "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, c.RecipeIDs)

	// Re-adding a member changes nothing.
	c, err = svc.AddRecipe(created.ID, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, c.RecipeIDs)

	_, err = svc.AddRecipe("nope", "1")
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestRemoveRecipe(t *testing.T) {
	svc, _ := newCollections(t)

	created, err := svc.Create("Weeknight Dinners", "", "u1")
	require.NoError(t, err)
	_, err = svc.AddRecipe(created.ID, "1")
	require.NoError(t, err)
	_, err = svc.AddRecipe(created.ID, "2")
	require.NoError(t, err)

	c, err := svc.RemoveRecipe(created.ID, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, c.RecipeIDs)

	// Removing a non-member leaves the list unchanged.
	c, err = svc.RemoveRecipe(created.ID, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, c.RecipeIDs)
}

func TestReorder(t *testing.T) {
	svc, _ := newCollections(t)

	created, err := svc.Create("Weeknight Dinners", "", "u1")
	require.NoError(t, err)
	for _, id := range []string{"1", "2", "3"} {
		_, err = svc.AddRecipe(created.ID, id)
		require.NoError(t, err)
	}

	c, err := svc.Reorder(created.ID, []string{"3", "1", "2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "2"}, c.RecipeIDs)

	// Drops, duplicates, and foreign ids are all rejected.
	_, err = svc.Reorder(created.ID, []string{"3", "1"})
	assert.ErrorIs(t, err, ErrBadReorder)
	_, err = svc.Reorder(created.ID, []string{"3", "1", "1"})
	assert.ErrorIs(t, err, ErrBadReorder)
	_, err = svc.Reorder(created.ID, []string{"3", "1", "99"})
	assert.ErrorIs(t, err, ErrBadReorder)

	// A failed reorder leaves the order intact.
	after, ok := svc.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"3", "1", "2"}, after.RecipeIDs)
}

func TestDeleteCollection(t *testing.T) {
	svc, store := newCollections(t)

	created, err := svc.Create("Weeknight Dinners", "", "u1")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	_, ok := svc.Get(created.ID)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.Delete(created.ID), ErrCollectionNotFound)

	reloaded, err := NewCollectionService(store)
	require.NoError(t, err)
	assert.Len(t, reloaded.Collections(), 2)
}

func TestOrphanedRecipeIDsStayPut(t *testing.T) {
	// A recipe deleted from the catalog is not scrubbed from collections;
	// lookups for it simply resolve to nothing.
	store := storage.NewMemory()
	collections, err := NewCollectionService(store)
	require.NoError(t, err)
	recipes, err := NewRecipeService(store)
	require.NoError(t, err)

	created, err := collections.Create("Weeknight Dinners", "", "u1")
	require.NoError(t, err)
	_, err = collections.AddRecipe(created.ID, "1")
	require.NoError(t, err)

	require.NoError(t, recipes.Delete("1"))

	c, ok := collections.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"1"}, c.RecipeIDs)
	_, ok = recipes.Get("1")
	assert.False(t, ok)
}
