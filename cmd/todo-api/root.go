package main

import (
	"fmt"

	"github.com/deppfellow/todo-api/internal/config"
	"github.com/deppfellow/todo-api/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           config.ServiceName,
		Short:         "REST API for todos and users",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
	)

	return root
}

// app is what every command needs before doing its own work.
type app struct {
	cfg           *config.Config
	log           *zerolog.Logger
	loggerService *logger.LoggerService
}

// bootstrap loads the configuration and builds the logger.
func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return &app{
		cfg:           cfg,
		log:           &log,
		loggerService: loggerService,
	}, nil
}
