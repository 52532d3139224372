package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"noteful/internal/seed"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed [file]",
		Short: "Wipe the store and load a YAML dataset (built-in sample data by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var data *seed.Dataset
			var err error
			if len(args) == 1 {
				f, openErr := os.Open(args[0])
				if openErr != nil {
					return openErr
				}
				defer f.Close()
				data, err = seed.Load(f)
			} else {
				data, err = seed.Default()
			}
			if err != nil {
				return fmt.Errorf("load dataset: %w", err)
			}

			store, err := openBackend(ctx, a.cfg)
			if err != nil {
				return err
			}
			defer store.close()
			if a.cfg.AutoMigrate {
				if err := store.migrate(ctx, false); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}

			seeder := seed.NewSeeder(seed.Repositories{
				Folders: store.folders,
				Tags:    store.tags,
				Notes:   store.notes,
			}, a.logger)
			counts, err := seeder.Seed(ctx, data, store.reset)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d folders, %d tags, %d notes\n", counts.Folders, counts.Tags, counts.Notes)
			return nil
		},
	}
}
