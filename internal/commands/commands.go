// Package commands is the command line of the blog backend
package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"blog-backend/internal/config"
	"blog-backend/internal/database"
	"blog-backend/internal/logging"
)

// App returns the root command
func App() *cli.App {
	return &cli.App{
		Name:  "blog",
		Usage: "Blog API with token based authentication",
		Commands: []*cli.Command{
			serveCmd(),
			migrateCmd(),
			userCmd(),
		},
	}
}

// startLogging builds the logger described by cfg and attaches it to the command context
func startLogging(c *cli.Context, cfg *config.Config) (context.Context, zerolog.Logger, error) {
	logger, err := logging.New(c.App.ErrWriter, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return logging.WithLogger(c.Context, logger), logger, nil
}

func openDatabase(ctx context.Context, cfg *config.Config) (*database.DB, error) {
	if err := cfg.ValidateDatabase(); err != nil {
		return nil, err
	}
	return database.Open(ctx, databaseConfig(cfg))
}

func databaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		Driver: database.Driver(cfg.DatabaseDriver),
		Path:   cfg.DatabasePath,
		URL:    cfg.DatabaseURL,
	}
}
