package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/teka-app/teka/internal/logger"
	"github.com/teka-app/teka/internal/models"
	"github.com/teka-app/teka/internal/seed"
	"github.com/teka-app/teka/internal/storage"
)

const collectionsSlotKey = "collections"

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrBadReorder         = errors.New("reorder list is not a permutation of current members")
)

// CollectionService owns named, ordered groupings of recipe ids.
// Referential integrity against the recipe catalog is best-effort:
// deleting a recipe may leave an orphaned id here, and consumers filter
// failed lookups rather than expecting this store to cascade.
type CollectionService struct {
	mu          sync.RWMutex
	log         zerolog.Logger
	slot        storage.Slot[[]models.Collection]
	collections []models.Collection
}

// NewCollectionService loads the collections slot, seeding the two
// system-created defaults on first run.
func NewCollectionService(store storage.Store) (*CollectionService, error) {
	s := &CollectionService{
		log:  logger.For("collections"),
		slot: storage.NewSlot[[]models.Collection](store, collectionsSlotKey),
	}

	collections, err := loadOrSeed(s.slot, seed.Collections, s.log)
	if err != nil {
		return nil, err
	}
	s.collections = collections
	return s, nil
}

// Collections returns every collection in storage order.
func (s *CollectionService) Collections() []models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.collections)
}

// Get looks a collection up by id.
func (s *CollectionService) Get(id string) (models.Collection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.collections {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return models.Collection{}, false
}

// Create appends a new, empty collection. The caller supplies the owning
// user's id.
func (s *CollectionService) Create(name, description, createdBy string) (models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := models.Collection{
		ID:          newID(),
		Name:        name,
		Description: description,
		RecipeIDs:   []string{},
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   createdBy,
	}

	next := append(cloneAll(s.collections), collection)
	if err := s.slot.Save(next); err != nil {
		return models.Collection{}, err
	}
	s.collections = next
	s.log.Info().Str("collection", collection.ID).Str("name", name).Msg("collection created")
	return collection.Clone(), nil
}

// Update merges a partial update into the collection with the given id.
func (s *CollectionService) Update(id string, update models.CollectionUpdate) (models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.collections)
	idx := indexOfCollection(next, id)
	if idx < 0 {
		return models.Collection{}, ErrCollectionNotFound
	}
	update.Apply(&next[idx])

	if err := s.slot.Save(next); err != nil {
		return models.Collection{}, err
	}
	s.collections = next
	return next[idx].Clone(), nil
}

// Delete removes a collection. System-created collections are exempt only
// at the presentation layer; the store deletes whatever it is told to.
func (s *CollectionService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Collection, 0, len(s.collections))
	for _, c := range s.collections {
		if c.ID != id {
			next = append(next, c.Clone())
		}
	}
	if len(next) == len(s.collections) {
		return ErrCollectionNotFound
	}

	if err := s.slot.Save(next); err != nil {
		return err
	}
	s.collections = next
	return nil
}

// AddRecipe appends a recipe id to the collection's member list. Adding
// an id already present is a no-op.
func (s *CollectionService) AddRecipe(collectionID, recipeID string) (models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.collections)
	idx := indexOfCollection(next, collectionID)
	if idx < 0 {
		return models.Collection{}, ErrCollectionNotFound
	}
	if next[idx].Contains(recipeID) {
		return next[idx].Clone(), nil
	}
	next[idx].RecipeIDs = append(next[idx].RecipeIDs, recipeID)

	if err := s.slot.Save(next); err != nil {
		return models.Collection{}, err
	}
	s.collections = next
	return next[idx].Clone(), nil
}

// RemoveRecipe drops a recipe id from the collection's member list.
func (s *CollectionService) RemoveRecipe(collectionID, recipeID string) (models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.collections)
	idx := indexOfCollection(next, collectionID)
	if idx < 0 {
		return models.Collection{}, ErrCollectionNotFound
	}

	members := make([]string, 0, len(next[idx].RecipeIDs))
	for _, id := range next[idx].RecipeIDs {
		if id != recipeID {
			members = append(members, id)
		}
	}
	next[idx].RecipeIDs = members

	if err := s.slot.Save(next); err != nil {
		return models.Collection{}, err
	}
	s.collections = next
	return next[idx].Clone(), nil
}

// Reorder replaces the member order wholesale. The new order must be a
// permutation of the current members; drops, duplicates, and foreign ids
// are rejected with ErrBadReorder.
func (s *CollectionService) Reorder(collectionID string, newOrder []string) (models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.collections)
	idx := indexOfCollection(next, collectionID)
	if idx < 0 {
		return models.Collection{}, ErrCollectionNotFound
	}
	if err := checkPermutation(next[idx].RecipeIDs, newOrder); err != nil {
		return models.Collection{}, err
	}
	next[idx].RecipeIDs = cloneStrings(newOrder)

	if err := s.slot.Save(next); err != nil {
		return models.Collection{}, err
	}
	s.collections = next
	return next[idx].Clone(), nil
}

func indexOfCollection(collections []models.Collection, id string) int {
	for i, c := range collections {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func checkPermutation(current, proposed []string) error {
	if len(current) != len(proposed) {
		return fmt.Errorf("%w: have %d members, got %d", ErrBadReorder, len(current), len(proposed))
	}
	seen := make(map[string]bool, len(current))
	for _, id := range current {
		seen[id] = true
	}
	for _, id := range proposed {
		if !seen[id] {
			return fmt.Errorf("%w: %q is not a member or appears twice", ErrBadReorder, id)
		}
		delete(seen, id)
	}
	return nil
}
