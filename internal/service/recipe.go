package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/teka-app/teka/internal/logger"
	"github.com/teka-app/teka/internal/models"
	"github.com/teka-app/teka/internal/seed"
	"github.com/teka-app/teka/internal/storage"
)

const (
	recipesSlotKey   = "recipes"
	favoritesSlotKey = "favorites"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrInvalidRating  = errors.New("rating must be between 0 and 5")
	ErrInvalidRecipe  = errors.New("invalid recipe")
	ErrUnknownSort    = errors.New("unknown sort mode")
)

// SortMode orders recipe listings.
type SortMode string

const (
	SortNewest   SortMode = "newest"
	SortOldest   SortMode = "oldest"
	SortTopRated SortMode = "rating"
	SortQuickest SortMode = "quickest"
	SortTitle    SortMode = "title"
)

// RecipeService owns the recipe catalog and the current profile's
// favorite-recipe id set.
type RecipeService struct {
	mu        sync.RWMutex
	log       zerolog.Logger
	catalog   storage.Slot[[]models.Recipe]
	favSlot   storage.Slot[[]string]
	recipes   []models.Recipe
	favorites []string
}

// NewRecipeService loads the catalog and favorites slots, seeding the
// fixed recipe dataset on first run.
func NewRecipeService(store storage.Store) (*RecipeService, error) {
	s := &RecipeService{
		log:     logger.For("recipes"),
		catalog: storage.NewSlot[[]models.Recipe](store, recipesSlotKey),
		favSlot: storage.NewSlot[[]string](store, favoritesSlotKey),
	}

	recipes, err := loadOrSeed(s.catalog, seed.Recipes, s.log)
	if err != nil {
		return nil, err
	}
	favorites, err := loadOrSeed(s.favSlot, seed.Favorites, s.log)
	if err != nil {
		return nil, err
	}
	s.recipes = recipes
	s.favorites = favorites
	return s, nil
}

// Recipes returns the catalog in storage order.
func (s *RecipeService) Recipes() []models.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.recipes)
}

// Get looks a recipe up by id.
func (s *RecipeService) Get(id string) (models.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.recipes {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return models.Recipe{}, false
}

// Add appends a new recipe. ID, creation time, rating, and comments are
// synthesized here; the caller supplies everything else, including the
// creating user's id in CreatedBy.
func (s *RecipeService) Add(recipe models.Recipe) (models.Recipe, error) {
	if err := validateRecipe(recipe.Title, recipe.Category, recipe.CookingTime, recipe.Servings); err != nil {
		return models.Recipe{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recipe.ID = newID()
	recipe.CreatedAt = time.Now().UTC()
	recipe.Rating = 0
	recipe.Comments = []models.Comment{}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []string{}
	}

	next := append(cloneAll(s.recipes), recipe)
	if err := s.catalog.Save(next); err != nil {
		return models.Recipe{}, err
	}
	s.recipes = next
	s.log.Info().Str("recipe", recipe.ID).Str("title", recipe.Title).Msg("recipe added")
	return recipe.Clone(), nil
}

// Update merges a partial update into the recipe with the given id.
func (s *RecipeService) Update(id string, update models.RecipeUpdate) (models.Recipe, error) {
	if update.Category != nil && !models.ValidCategory(*update.Category) {
		return models.Recipe{}, fmt.Errorf("%w: unknown category %q", ErrInvalidRecipe, *update.Category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.recipes)
	idx := indexOfRecipe(next, id)
	if idx < 0 {
		return models.Recipe{}, ErrRecipeNotFound
	}
	update.Apply(&next[idx])

	if err := s.catalog.Save(next); err != nil {
		return models.Recipe{}, err
	}
	s.recipes = next
	return next[idx].Clone(), nil
}

// Delete removes a recipe and cascades its id out of the favorites set.
// References left inside collections are not cleaned up; consumers must
// tolerate lookups that resolve to nothing.
func (s *RecipeService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		if r.ID != id {
			next = append(next, r.Clone())
		}
	}
	if len(next) == len(s.recipes) {
		return ErrRecipeNotFound
	}

	nextFavs := make([]string, 0, len(s.favorites))
	for _, fav := range s.favorites {
		if fav != id {
			nextFavs = append(nextFavs, fav)
		}
	}

	if err := s.catalog.Save(next); err != nil {
		return err
	}
	if err := s.favSlot.Save(nextFavs); err != nil {
		return err
	}
	s.recipes = next
	s.favorites = nextFavs
	s.log.Info().Str("recipe", id).Msg("recipe deleted")
	return nil
}

// ToggleFavorite flips the recipe id's membership in the favorites set
// and returns the new set.
func (s *RecipeService) ToggleFavorite(id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]string, 0, len(s.favorites)+1)
	found := false
	for _, fav := range s.favorites {
		if fav == id {
			found = true
			continue
		}
		next = append(next, fav)
	}
	if !found {
		next = append(next, id)
	}

	if err := s.favSlot.Save(next); err != nil {
		return nil, err
	}
	s.favorites = next
	return cloneStrings(next), nil
}

// Favorites returns the favorite-recipe id set.
func (s *RecipeService) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneStrings(s.favorites)
}

// Rate overwrites the recipe's rating with the most recent value. The
// scalar is not an average across raters.
func (s *RecipeService) Rate(id string, rating float64) (models.Recipe, error) {
	if rating < 0 || rating > 5 {
		return models.Recipe{}, ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.recipes)
	idx := indexOfRecipe(next, id)
	if idx < 0 {
		return models.Recipe{}, ErrRecipeNotFound
	}
	next[idx].Rating = rating

	if err := s.catalog.Save(next); err != nil {
		return models.Recipe{}, err
	}
	s.recipes = next
	return next[idx].Clone(), nil
}

// AddComment appends a comment with a synthesized id and timestamp. The
// username comes from whatever current-user context the caller supplies.
func (s *RecipeService) AddComment(id, username, text string) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.recipes)
	idx := indexOfRecipe(next, id)
	if idx < 0 {
		return models.Comment{}, ErrRecipeNotFound
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		Username:  username,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
	next[idx].Comments = append(next[idx].Comments, comment)

	if err := s.catalog.Save(next); err != nil {
		return models.Comment{}, err
	}
	s.recipes = next
	return comment, nil
}

// Search returns recipes whose title, description, or any ingredient
// contains the query, case-insensitively. An empty query returns the
// whole catalog.
func (s *RecipeService) Search(query string) []models.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if query == "" {
		return cloneAll(s.recipes)
	}
	needle := strings.ToLower(query)

	var out []models.Recipe
	for _, r := range s.recipes {
		if recipeMatches(r, needle) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Filter returns recipes passing both optional predicates: an exact
// category match and a cooking-time ceiling. Zero values disable the
// corresponding predicate.
func (s *RecipeService) Filter(category string, maxTime int) []models.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Recipe
	for _, r := range s.recipes {
		if category != "" && r.Category != category {
			continue
		}
		if maxTime > 0 && r.CookingTime > maxTime {
			continue
		}
		out = append(out, r.Clone())
	}
	return out
}

// Sort returns the catalog ordered by the given mode.
func (s *RecipeService) Sort(mode SortMode) ([]models.Recipe, error) {
	s.mu.RLock()
	out := cloneAll(s.recipes)
	s.mu.RUnlock()

	switch mode {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	case SortTopRated:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortQuickest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CookingTime < out[j].CookingTime })
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSort, mode)
	}
	return out, nil
}

func recipeMatches(r models.Recipe, needle string) bool {
	if strings.Contains(strings.ToLower(r.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), needle) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), needle) {
			return true
		}
	}
	return false
}

func indexOfRecipe(recipes []models.Recipe, id string) int {
	for i, r := range recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func validateRecipe(title, category string, cookingTime, servings int) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidRecipe)
	}
	if !models.ValidCategory(category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidRecipe, category)
	}
	if cookingTime <= 0 {
		return fmt.Errorf("%w: cooking time must be positive", ErrInvalidRecipe)
	}
	if servings <= 0 {
		return fmt.Errorf("%w: servings must be positive", ErrInvalidRecipe)
	}
	return nil
}
