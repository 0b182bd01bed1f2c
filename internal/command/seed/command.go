package seed

import (
	"log/slog"

	"github.com/bornholm/notes/internal/config"
	"github.com/bornholm/notes/internal/seed"
	"github.com/bornholm/notes/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const flagFixtures = "fixtures"

func Command() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Reset the database and load fixture users and notes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagFixtures,
				Aliases: []string{"f"},
				Usage:   "Path to a YAML fixtures file (defaults to the built-in demo dataset)",
				EnvVars: []string{"NOTES_FIXTURES"},
			},
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			fixtures := seed.DefaultFixtures()

			if path := cCtx.String(flagFixtures); path != "" {
				fixtures, err = seed.LoadFixtures(path)
				if err != nil {
					return errors.Wrapf(err, "could not load fixtures from '%s'", path)
				}
			}

			seeder, err := setup.NewSeederFromConfig(ctx, conf)
			if err != nil {
				return errors.Wrap(err, "could not setup seeder")
			}

			if err := seeder.Apply(ctx, fixtures); err != nil {
				return errors.WithStack(err)
			}

			slog.InfoContext(ctx, "database seeded", slog.Int("users", len(fixtures.Users)))

			return nil
		},
	}
}
