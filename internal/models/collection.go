package models

import "time"

// SystemUser marks the two seeded collections; the presentation layer
// suppresses edit/delete affordances for records it owns.
const SystemUser = "system"

// Collection is a named, ordered grouping of recipe ids. Membership is
// duplicate-free; ordering is significant and caller-controlled.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	RecipeIDs   []string  `json:"recipeIds"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

// Clone returns a deep copy.
func (c Collection) Clone() Collection {
	c.RecipeIDs = append([]string(nil), c.RecipeIDs...)
	return c
}

// Contains reports whether recipeID is a member.
func (c Collection) Contains(recipeID string) bool {
	for _, id := range c.RecipeIDs {
		if id == recipeID {
			return true
		}
	}
	return false
}

// CollectionUpdate is a partial collection update; nil fields are left
// untouched. Membership changes go through the dedicated operations.
type CollectionUpdate struct {
	Name        *string
	Description *string
}

// Apply merges the update into c.
func (p CollectionUpdate) Apply(c *Collection) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
}
