package commands

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"blog-backend/internal/auth"
	"blog-backend/internal/config"
	"blog-backend/internal/database"
	"blog-backend/internal/models"
)

func userCmd() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Manage blog accounts",
		Subcommands: []*cli.Command{
			registerCmd(),
		},
	}
}

func registerCmd() *cli.Command {
	cfg := config.New()
	var username string
	return &cli.Command{
		Name:  "register",
		Usage: "Register a new user (password is read from stdin)",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "username",
				Aliases:     []string{"u", "user"},
				Usage:       "Name of the user to register",
				Destination: &username,
				Required:    true,
			},
		}, append(config.DatabaseFlags(cfg), config.LogFlags(cfg)...)...),
		Action: func(c *cli.Context) error {
			sc := bufio.NewScanner(c.App.Reader)
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return err
				}
				return errors.New("missing password from stdin")
			}
			password := strings.TrimSpace(sc.Text())
			if len(password) == 0 {
				return errors.New("missing password from stdin")
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

			// No tokens are issued from the command line
			svc := auth.NewService(database.NewUserRepo(db), nil)
			user, err := svc.Register(ctx, models.Credentials{Username: username, Password: password})
			if err != nil {
				return fmt.Errorf("register %q: %w", username, err)
			}

			log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("User created")
			fmt.Fprintln(c.App.Writer, user.ID)
			return nil
		},
	}
}
