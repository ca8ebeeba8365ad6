package models

import "time"

// Recipe categories form a fixed enumerated set.
const (
	CategoryBreakfast = "Breakfast"
	CategoryLunch     = "Lunch"
	CategoryDinner    = "Dinner"
	CategoryDessert   = "Dessert"
	CategorySnack     = "Snack"
)

// RecipeCategories lists every valid recipe category.
func RecipeCategories() []string {
	return []string{CategoryBreakfast, CategoryLunch, CategoryDinner, CategoryDessert, CategorySnack}
}

// ValidCategory reports whether c is a known recipe category.
func ValidCategory(c string) bool {
	for _, known := range RecipeCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// NutritionalInfo holds per-serving macros. All values are non-negative.
type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// Add returns the component-wise sum of n and other.
func (n NutritionalInfo) Add(other NutritionalInfo) NutritionalInfo {
	n.Calories += other.Calories
	n.Protein += other.Protein
	n.Fat += other.Fat
	n.Carbs += other.Carbs
	return n
}

// Comment is an append-only child of a recipe, immutable once created.
type Comment struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type Recipe struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Ingredients     []string        `json:"ingredients"`
	Instructions    string          `json:"instructions"`
	CookingTime     int             `json:"cookingTime"`
	Servings        int             `json:"servings"`
	Category        string          `json:"category"`
	Rating          float64         `json:"rating"`
	NutritionalInfo NutritionalInfo `json:"nutritionalInfo"`
	Comments        []Comment       `json:"comments"`
	CreatedBy       string          `json:"createdBy"`
	CreatedAt       time.Time       `json:"createdAt"`
	ImageURL        string          `json:"imageUrl"`
}

// Clone returns a deep copy.
func (r Recipe) Clone() Recipe {
	r.Ingredients = append([]string(nil), r.Ingredients...)
	r.Comments = append([]Comment(nil), r.Comments...)
	return r
}

// RecipeUpdate is a partial recipe update; nil fields are left untouched.
type RecipeUpdate struct {
	Title           *string
	Description     *string
	Ingredients     *[]string
	Instructions    *string
	CookingTime     *int
	Servings        *int
	Category        *string
	NutritionalInfo *NutritionalInfo
	ImageURL        *string
}

// Apply merges the update into r.
func (p RecipeUpdate) Apply(r *Recipe) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Ingredients != nil {
		r.Ingredients = append([]string(nil), *p.Ingredients...)
	}
	if p.Instructions != nil {
		r.Instructions = *p.Instructions
	}
	if p.CookingTime != nil {
		r.CookingTime = *p.CookingTime
	}
	if p.Servings != nil {
		r.Servings = *p.Servings
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.NutritionalInfo != nil {
		r.NutritionalInfo = *p.NutritionalInfo
	}
	if p.ImageURL != nil {
		r.ImageURL = *p.ImageURL
	}
}
