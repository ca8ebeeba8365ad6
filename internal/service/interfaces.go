package service

import "github.com/teka-app/teka/internal/models"

// IAuthService defines the auth store operations.
type IAuthService interface {
	Register(username, email, password, profilePicture string) (models.User, error)
	Login(email, password string) (models.User, error)
	Logout() error
	CurrentUser() (models.User, bool)
	UpdateProfile(update models.UserUpdate) (models.User, error)
	Users() []models.User
}

// IRecipeService defines the recipe store operations.
type IRecipeService interface {
	Recipes() []models.Recipe
	Get(id string) (models.Recipe, bool)
	Add(recipe models.Recipe) (models.Recipe, error)
	Update(id string, update models.RecipeUpdate) (models.Recipe, error)
	Delete(id string) error
	ToggleFavorite(id string) ([]string, error)
	Favorites() []string
	Rate(id string, rating float64) (models.Recipe, error)
	AddComment(id, username, text string) (models.Comment, error)
	Search(query string) []models.Recipe
	Filter(category string, maxTime int) []models.Recipe
	Sort(mode SortMode) ([]models.Recipe, error)
}

// ICollectionService defines the collection store operations.
type ICollectionService interface {
	Collections() []models.Collection
	Get(id string) (models.Collection, bool)
	Create(name, description, createdBy string) (models.Collection, error)
	Update(id string, update models.CollectionUpdate) (models.Collection, error)
	Delete(id string) error
	AddRecipe(collectionID, recipeID string) (models.Collection, error)
	RemoveRecipe(collectionID, recipeID string) (models.Collection, error)
	Reorder(collectionID string, newOrder []string) (models.Collection, error)
}

// IBlogService defines the blog store operations.
type IBlogService interface {
	Posts() []models.BlogPost
	Categories() []string
	AddPost(post models.BlogPost) (models.BlogPost, error)
	UpdatePost(id string, update models.BlogPostUpdate) (models.BlogPost, error)
	DeletePost(id string) error
	PostBySlug(slug string) (models.BlogPost, bool)
	PostsByCategory(category string) []models.BlogPost
	FeaturedPosts() []models.BlogPost
	LikePost(id string) (models.BlogPost, error)
	IncrementViews(id string) (models.BlogPost, error)
}

// IMealPlanService defines the meal planner operations.
type IMealPlanService interface {
	Plan() models.MealPlan
	Days() []string
	Assign(day string, recipe models.Recipe) error
	Unassign(day string, index int) error
	MoveWithinDay(day string, from, to int) error
	MoveAcrossDays(fromDay string, from int, toDay string, to int) error
	WeeklyTotals() models.NutritionalInfo
}

// Ensure the concrete services implement their interfaces
var (
	_ IAuthService       = (*AuthService)(nil)
	_ IRecipeService     = (*RecipeService)(nil)
	_ ICollectionService = (*CollectionService)(nil)
	_ IBlogService       = (*BlogService)(nil)
	_ IMealPlanService   = (*MealPlanService)(nil)
)
