package main

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply or revert the store schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openBackend(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer store.close()

			down := args[0] == "down"
			if err := store.migrate(cmd.Context(), down); err != nil {
				return err
			}
			a.logger.Info("migrations applied", "store", a.cfg.Store, "direction", args[0])
			return nil
		},
	}
}
