package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teka-app/teka/internal/service"
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan the week's meals",
	}
	cmd.AddCommand(planShowCmd(), planAddCmd(), planRemoveCmd(), planMoveCmd())
	return cmd
}

func planShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the weekly plan and nutrition totals",
		Args:  cobra.NoArgs,
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			plan := a.plan.Plan()
			for _, day := range a.plan.Days() {
				fmt.Printf("%s:\n", day)
				meals := plan[day]
				if len(meals) == 0 {
					fmt.Println("  (nothing planned)")
					continue
				}
				for i, r := range meals {
					fmt.Printf("  %d. %s (%d min, %.0f cal)\n", i, r.Title, r.CookingTime, r.NutritionalInfo.Calories)
				}
			}
			totals := a.plan.WeeklyTotals()
			fmt.Printf("\nWeekly totals: %.0f cal, %.0fg protein, %.0fg fat, %.0fg carbs\n",
				totals.Calories, totals.Protein, totals.Fat, totals.Carbs)
			return nil
		}),
	}
}

func planAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <day> <recipe-id>",
		Short: "Add a recipe to a day",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			recipe, ok := a.recipes.Get(args[1])
			if !ok {
				return service.ErrRecipeNotFound
			}
			if err := a.plan.Assign(args[0], recipe); err != nil {
				return err
			}
			fmt.Printf("Planned %q for %s\n", recipe.Title, args[0])
			return nil
		}),
	}
}

func planRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <day> <index>",
		Short: "Remove the meal at a day's index (see `plan show`)",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("index must be a number: %w", err)
			}
			if err := a.plan.Unassign(args[0], index); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		}),
	}
}

func planMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <from-day> <from-index> <to-day> <to-index>",
		Short: "Move a meal within or across days",
		Args:  cobra.ExactArgs(4),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("from-index must be a number: %w", err)
			}
			to, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("to-index must be a number: %w", err)
			}
			if err := a.plan.MoveAcrossDays(args[0], from, args[2], to); err != nil {
				return err
			}
			fmt.Println("Moved.")
			return nil
		}),
	}
}
