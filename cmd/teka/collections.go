package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teka-app/teka/internal/models"
	"github.com/teka-app/teka/internal/service"
)

func collectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "Organize recipes into ordered collections",
	}
	cmd.AddCommand(
		collectionsListCmd(),
		collectionsShowCmd(),
		collectionsCreateCmd(),
		collectionsRenameCmd(),
		collectionsDeleteCmd(),
		collectionsAddCmd(),
		collectionsRemoveCmd(),
		collectionsReorderCmd(),
	)
	return cmd
}

func collectionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all collections",
		Args:  cobra.NoArgs,
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			for _, c := range a.collections.Collections() {
				owner := ""
				if c.CreatedBy == models.SystemUser {
					owner = " (built-in)"
				}
				fmt.Printf("%-15s %-25s %2d recipe(s)%s\n", c.ID, c.Name, len(c.RecipeIDs), owner)
			}
			return nil
		}),
	}
}

func collectionsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a collection's recipes in order",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			collection, ok := a.collections.Get(args[0])
			if !ok {
				return service.ErrCollectionNotFound
			}
			fmt.Printf("%s — %s\n", collection.Name, collection.Description)
			for i, recipeID := range collection.RecipeIDs {
				// Deleted recipes may linger as dangling references.
				recipe, ok := a.recipes.Get(recipeID)
				if !ok {
					continue
				}
				fmt.Printf("%2d. %-4s %s\n", i+1, recipe.ID, recipe.Title)
			}
			return nil
		}),
	}
}

func collectionsCreateCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty collection",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			_, userID, err := a.requireUser()
			if err != nil {
				return err
			}
			collection, err := a.collections.Create(args[0], description, userID)
			if err != nil {
				return err
			}
			fmt.Printf("Created %q (id %s)\n", collection.Name, collection.ID)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "what this collection is for")
	return cmd
}

func collectionsRenameCmd() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "rename <id>",
		Short: "Rename or re-describe a collection",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			if err := rejectSystemCollection(a, args[0]); err != nil {
				return err
			}
			var update models.CollectionUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("description") {
				update.Description = &description
			}
			collection, err := a.collections.Update(args[0], update)
			if err != nil {
				return err
			}
			fmt.Printf("Updated %q\n", collection.Name)
			return nil
		}),
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	return cmd
}

func collectionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a collection",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			if err := rejectSystemCollection(a, args[0]); err != nil {
				return err
			}
			if err := a.collections.Delete(args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		}),
	}
}

func collectionsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <collection-id> <recipe-id>",
		Short: "Add a recipe to a collection",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			if _, ok := a.recipes.Get(args[1]); !ok {
				return service.ErrRecipeNotFound
			}
			collection, err := a.collections.AddRecipe(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%q now holds %d recipe(s)\n", collection.Name, len(collection.RecipeIDs))
			return nil
		}),
	}
}

func collectionsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <collection-id> <recipe-id>",
		Short: "Remove a recipe from a collection",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			collection, err := a.collections.RemoveRecipe(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%q now holds %d recipe(s)\n", collection.Name, len(collection.RecipeIDs))
			return nil
		}),
	}
}

func collectionsReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <collection-id> <recipe-id>...",
		Short: "Replace a collection's recipe order",
		Long:  "Supply every member recipe id in the desired order; partial lists are rejected.",
		Args:  cobra.MinimumNArgs(2),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			collection, err := a.collections.Reorder(args[0], args[1:])
			if err != nil {
				return err
			}
			fmt.Printf("Reordered %q\n", collection.Name)
			return nil
		}),
	}
}

// rejectSystemCollection enforces the UI-layer rule that the seeded
// collections cannot be edited or deleted.
func rejectSystemCollection(a *app, id string) error {
	collection, ok := a.collections.Get(id)
	if !ok {
		return service.ErrCollectionNotFound
	}
	if collection.CreatedBy == models.SystemUser {
		return fmt.Errorf("%q is a built-in collection and cannot be changed", collection.Name)
	}
	return nil
}
