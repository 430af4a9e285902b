package main

import (
	"context"

	"github.com/deppfellow/todo-api/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the indexes (mongo) or tables (postgres) the API relies on",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.loggerService.Shutdown()

			return runMigrate(cmd.Context(), a)
		},
	}
}

func runMigrate(ctx context.Context, a *app) error {
	return database.Migrate(ctx, a.log, a.cfg)
}
