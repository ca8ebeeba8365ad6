package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teka-app/teka/config"
)

func resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all local data and return to the seed datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.StorageDriver != config.DriverSQLite {
				fmt.Println("Nothing to reset: the memory driver holds no data between runs.")
				return nil
			}
			if !yes {
				return fmt.Errorf("this deletes %s; re-run with --yes to confirm", cfg.DatabasePath())
			}
			if err := os.Remove(cfg.DatabasePath()); err != nil {
				if os.IsNotExist(err) {
					fmt.Println("Already at the seed datasets.")
					return nil
				}
				return fmt.Errorf("remove database: %w", err)
			}
			fmt.Println("Local data removed. The next command starts from the seed datasets.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	return cmd
}
