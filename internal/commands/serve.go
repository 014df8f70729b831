package commands

import (
	"github.com/urfave/cli/v2"

	"blog-backend/internal/api"
	"blog-backend/internal/auth"
	"blog-backend/internal/certs"
	"blog-backend/internal/config"
	"blog-backend/internal/database"
)

func serveCmd() *cli.Command {
	cfg := config.New()
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API",
		Flags: config.ServeFlags(cfg),
		Action: func(c *cli.Context) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			ctx, log, err := startLogging(c, cfg)
			if err != nil {
				return err
			}

			db, err := openDatabase(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			tokens, err := auth.NewTokenIssuer([]byte(cfg.JWTSecret))
			if err != nil {
				return err
			}

			users := database.NewUserRepo(db)
			if count, err := users.Count(ctx); err == nil {
				log.Info().Str("driver", string(db.Driver())).Int("users", count).Msg("Database ready")
			}

			handler := api.NewHandler(auth.NewService(users, tokens), database.NewPostRepo(db))
			e := api.NewServer(api.ServerConfig{
				AllowOrigins: cfg.AllowedOrigins(),
			}, handler, tokens, log)

			listen := api.ListenConfig{
				Addr:            cfg.Addr(),
				ShutdownTimeout: cfg.ShutdownTimeout,
			}
			if cfg.TLSDir != "" {
				pair, err := certs.EnsureSelfSigned(cfg.TLSDir, nil)
				if err != nil {
					return err
				}
				listen.CertFile = pair.CertFile
				listen.KeyFile = pair.KeyFile
			}

			return api.Serve(ctx, e, listen)
		},
	}
}
