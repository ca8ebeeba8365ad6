package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teka-app/teka/internal/models"
	"github.com/teka-app/teka/internal/service"
)

func recipesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Browse and manage the recipe catalog",
	}
	cmd.AddCommand(
		recipesListCmd(),
		recipesShowCmd(),
		recipesAddCmd(),
		recipesDeleteCmd(),
		recipesRateCmd(),
		recipesCommentCmd(),
		recipesFavoriteCmd(),
	)
	return cmd
}

func recipesListCmd() *cobra.Command {
	var query, category, sortBy string
	var maxTime int
	var favoritesOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, optionally searched, filtered, and sorted",
		Args:  cobra.NoArgs,
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			var recipes []models.Recipe
			switch {
			case query != "":
				recipes = a.recipes.Search(query)
			case category != "" || maxTime > 0:
				recipes = a.recipes.Filter(category, maxTime)
			default:
				var err error
				if recipes, err = a.recipes.Sort(service.SortMode(sortBy)); err != nil {
					return err
				}
			}

			if favoritesOnly {
				recipes = keepFavorites(recipes, a.recipes.Favorites())
			}

			favs := make(map[string]bool)
			for _, id := range a.recipes.Favorites() {
				favs[id] = true
			}
			for _, r := range recipes {
				marker := " "
				if favs[r.ID] {
					marker = "*"
				}
				fmt.Printf("%s %-4s %-45s %-10s %3d min  %.1f\n", marker, r.ID, r.Title, r.Category, r.CookingTime, r.Rating)
			}
			fmt.Printf("%d recipe(s)\n", len(recipes))
			return nil
		}),
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "search title, description, and ingredients")
	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category")
	cmd.Flags().IntVar(&maxTime, "max-time", 0, "filter by maximum cooking time in minutes")
	cmd.Flags().StringVar(&sortBy, "sort", string(service.SortNewest), "sort order: newest|oldest|rating|quickest|title")
	cmd.Flags().BoolVar(&favoritesOnly, "favorites", false, "only favorited recipes")
	return cmd
}

func recipesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recipe in full",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			recipe, ok := a.recipes.Get(args[0])
			if !ok {
				return service.ErrRecipeNotFound
			}
			printRecipe(recipe)
			return nil
		}),
	}
}

func recipesAddCmd() *cobra.Command {
	var recipe models.Recipe

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Publish a new recipe",
		Args:  cobra.NoArgs,
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			_, userID, err := a.requireUser()
			if err != nil {
				return err
			}
			recipe.CreatedBy = userID
			added, err := a.recipes.Add(recipe)
			if err != nil {
				return err
			}
			fmt.Printf("Added %q (id %s)\n", added.Title, added.ID)
			return nil
		}),
	}
	cmd.Flags().StringVar(&recipe.Title, "title", "", "recipe title")
	cmd.Flags().StringVar(&recipe.Description, "description", "", "short description")
	cmd.Flags().StringArrayVar(&recipe.Ingredients, "ingredient", nil, "ingredient (repeatable)")
	cmd.Flags().StringVar(&recipe.Instructions, "instructions", "", "preparation steps, one per line")
	cmd.Flags().IntVar(&recipe.CookingTime, "time", 0, "cooking time in minutes")
	cmd.Flags().IntVar(&recipe.Servings, "servings", 0, "number of servings")
	cmd.Flags().StringVar(&recipe.Category, "category", "", "one of "+strings.Join(models.RecipeCategories(), "|"))
	cmd.Flags().Float64Var(&recipe.NutritionalInfo.Calories, "calories", 0, "calories per serving")
	cmd.Flags().Float64Var(&recipe.NutritionalInfo.Protein, "protein", 0, "protein grams per serving")
	cmd.Flags().Float64Var(&recipe.NutritionalInfo.Fat, "fat", 0, "fat grams per serving")
	cmd.Flags().Float64Var(&recipe.NutritionalInfo.Carbs, "carbs", 0, "carb grams per serving")
	cmd.Flags().StringVar(&recipe.ImageURL, "image", "", "image URL")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("time")
	_ = cmd.MarkFlagRequired("servings")
	return cmd
}

func recipesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recipe you published",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			_, userID, err := a.requireUser()
			if err != nil {
				return err
			}
			recipe, ok := a.recipes.Get(args[0])
			if !ok {
				return service.ErrRecipeNotFound
			}
			if recipe.CreatedBy != userID {
				return fmt.Errorf("only the recipe's creator can delete it")
			}
			if err := a.recipes.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %q\n", recipe.Title)
			return nil
		}),
	}
}

func recipesRateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate <id> <rating>",
		Short: "Rate a recipe from 0 to 5",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			rating, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("rating must be a number: %w", err)
			}
			recipe, err := a.recipes.Rate(args[0], rating)
			if err != nil {
				return err
			}
			fmt.Printf("%q is now rated %.1f\n", recipe.Title, recipe.Rating)
			return nil
		}),
	}
}

const maxCommentLength = 500

func recipesCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment <id> <text>",
		Short: "Comment on a recipe",
		Args:  cobra.MinimumNArgs(2),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			username, _, err := a.requireUser()
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")
			if len(text) > maxCommentLength {
				return fmt.Errorf("comments are limited to %d characters", maxCommentLength)
			}
			if _, err := a.recipes.AddComment(args[0], username, text); err != nil {
				return err
			}
			fmt.Println("Comment added.")
			return nil
		}),
	}
}

func recipesFavoriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle a recipe in your favorites",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			favorites, err := a.recipes.ToggleFavorite(args[0])
			if err != nil {
				return err
			}
			for _, id := range favorites {
				if id == args[0] {
					fmt.Println("Added to favorites.")
					return nil
				}
			}
			fmt.Println("Removed from favorites.")
			return nil
		}),
	}
}

func keepFavorites(recipes []models.Recipe, favorites []string) []models.Recipe {
	favs := make(map[string]bool, len(favorites))
	for _, id := range favorites {
		favs[id] = true
	}
	out := recipes[:0]
	for _, r := range recipes {
		if favs[r.ID] {
			out = append(out, r)
		}
	}
	return out
}

func printRecipe(r models.Recipe) {
	fmt.Printf("%s (id %s)\n", r.Title, r.ID)
	fmt.Printf("%s | %d min | serves %d | rated %.1f\n\n", r.Category, r.CookingTime, r.Servings, r.Rating)
	fmt.Println(r.Description)
	fmt.Println("\nIngredients:")
	for _, ing := range r.Ingredients {
		fmt.Printf("  - %s\n", ing)
	}
	fmt.Println("\nInstructions:")
	fmt.Println(r.Instructions)
	n := r.NutritionalInfo
	fmt.Printf("\nPer serving: %.0f cal, %.0fg protein, %.0fg fat, %.0fg carbs\n", n.Calories, n.Protein, n.Fat, n.Carbs)
	if len(r.Comments) > 0 {
		fmt.Println("\nComments:")
		for _, c := range r.Comments {
			fmt.Printf("  %s (%s): %s\n", c.Username, c.Timestamp.Format("2006-01-02"), c.Text)
		}
	}
}
