package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teka-app/teka/internal/models"
)

func registerCmd() *cobra.Command {
	var password, avatar string

	cmd := &cobra.Command{
		Use:   "register <username> <email>",
		Short: "Create an account and sign in",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			user, err := a.auth.Register(args[0], args[1], password, avatar)
			if err != nil {
				return err
			}
			fmt.Printf("Welcome, %s! You are signed in.\n", user.Username)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&avatar, "avatar", "", "profile picture URL (defaults to a generated avatar)")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in with an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			user, err := a.auth.Login(args[0], password)
			if err != nil {
				return err
			}
			fmt.Printf("Welcome back, %s!\n", user.Username)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			if err := a.auth.Logout(); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		}),
	}
}

func whoamiCmd() *cobra.Command {
	var prefs []string
	var setPrefs bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show (or update) the signed-in profile",
		Args:  cobra.NoArgs,
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			if setPrefs {
				cleaned := make([]string, 0, len(prefs))
				for _, p := range prefs {
					if p = strings.TrimSpace(p); p != "" {
						cleaned = append(cleaned, p)
					}
				}
				if _, err := a.auth.UpdateProfile(models.UserUpdate{DietaryPreferences: &cleaned}); err != nil {
					return err
				}
			}

			user, ok := a.auth.CurrentUser()
			if !ok {
				fmt.Println("Not signed in.")
				return nil
			}
			fmt.Printf("%s <%s>\n", user.Username, user.Email)
			if len(user.DietaryPreferences) > 0 {
				fmt.Printf("Dietary preferences: %s\n", strings.Join(user.DietaryPreferences, ", "))
			}
			return nil
		}),
	}
	cmd.Flags().StringSliceVar(&prefs, "set-preferences", nil, "replace dietary preferences (comma separated)")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		setPrefs = cmd.Flags().Changed("set-preferences")
	}
	return cmd
}
