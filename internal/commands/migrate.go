package commands

import (
	"github.com/urfave/cli/v2"

	"blog-backend/internal/config"
	"blog-backend/internal/database"
)

func migrateCmd() *cli.Command {
	cfg := config.New()
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending database migrations and exit",
		Flags: append(config.DatabaseFlags(cfg), config.LogFlags(cfg)...),
		Action: func(c *cli.Context) error {
			ctx, log, err := startLogging(c, cfg)
			if err != nil {
				return err
			}
			if err := cfg.ValidateDatabase(); err != nil {
				return err
			}

			db, err := database.Connect(ctx, databaseConfig(cfg))
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := db.Migrate(ctx)
			if err != nil {
				return err
			}
			log.Info().Ints64("versions", applied).Msg("Migrations applied")
			return nil
		},
	}
}
