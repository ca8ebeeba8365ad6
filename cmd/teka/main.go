// Package main provides the teka binary: a command-line front end over
// the recipe, collection, blog, and meal-plan stores. All state lives in
// a local slot database under the configured data directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teka-app/teka/config"
	"github.com/teka-app/teka/internal/logger"
	"github.com/teka-app/teka/internal/service"
	"github.com/teka-app/teka/internal/storage"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teka",
		Short: "Teka recipe sharing, on the command line",
		Long: `Teka keeps recipes, collections, a weekly meal plan, and editorial
stories in a local database. Register once, then browse, cook, and plan.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		registerCmd(),
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		recipesCmd(),
		collectionsCmd(),
		blogCmd(),
		planCmd(),
		resetCmd(),
	)
	return cmd
}

// app wires the stores over one shared slot store.
type app struct {
	cfg         *config.Config
	auth        *service.AuthService
	recipes     *service.RecipeService
	collections *service.CollectionService
	blog        *service.BlogService
	plan        *service.MealPlanService

	close func() error
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.LogLevel)

	a := &app{cfg: cfg, close: func() error { return nil }}

	var store storage.Store
	switch cfg.StorageDriver {
	case config.DriverMemory:
		store = storage.NewMemory()
	default:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		db, err := storage.OpenSQLite(cfg.DatabasePath())
		if err != nil {
			return nil, err
		}
		store = db
		a.close = db.Close
	}

	if a.auth, err = service.NewAuthService(store); err != nil {
		return nil, err
	}
	if a.recipes, err = service.NewRecipeService(store); err != nil {
		return nil, err
	}
	if a.collections, err = service.NewCollectionService(store); err != nil {
		return nil, err
	}
	if a.blog, err = service.NewBlogService(store); err != nil {
		return nil, err
	}
	if a.plan, err = service.NewMealPlanService(store); err != nil {
		return nil, err
	}
	return a, nil
}

// withApp adapts a handler needing wired stores into a cobra RunE.
func withApp(run func(a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()
		return run(a, cmd, args)
	}
}

// requireUser returns the session user or an instruction to log in.
func (a *app) requireUser() (username, userID string, err error) {
	user, ok := a.auth.CurrentUser()
	if !ok {
		return "", "", fmt.Errorf("not logged in (use `teka login` or `teka register`)")
	}
	return user.Username, user.ID, nil
}
