package main

import (
	"context"
	"fmt"

	"github.com/deppfellow/todo-api/internal/repository"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace all todos and users with the fixture set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.loggerService.Shutdown()

			ctx := cmd.Context()

			srv, err := server.New(a.cfg, a.log, a.loggerService)
			if err != nil {
				return err
			}
			defer func() {
				if err := srv.Shutdown(context.Background()); err != nil {
					a.log.Error().Err(err).Msg("failed to close store")
				}
			}()

			services, err := service.NewService(srv, repository.NewRepositories(srv))
			if err != nil {
				return err
			}

			users, err := services.Fixture.Seed(ctx, service.DefaultFixtures())
			if err != nil {
				return err
			}

			for _, u := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", u.ID.Hex(), u.Email)
			}
			return nil
		},
	}
}
