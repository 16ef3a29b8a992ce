package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/amaumene/nyaainfo/internal/config"
	"github.com/amaumene/nyaainfo/internal/constants"
	"github.com/amaumene/nyaainfo/internal/errors"
	"github.com/amaumene/nyaainfo/internal/handlers"
	"github.com/amaumene/nyaainfo/internal/models"
	"github.com/amaumene/nyaainfo/internal/services"
	"github.com/amaumene/nyaainfo/pkg/httputil"
	"github.com/amaumene/nyaainfo/pkg/logger"
)

const environmentEpilog = "You may also provide environment variables NYAA_API_HOST, NYAA_API_USERNAME and NYAA_API_PASSWORD for connection info."

const (
	flagSukebei  = "sukebei"
	flagUser     = "user"
	flagPassword = "password"
	flagHost     = "host"
	flagRaw      = "raw"
	flagDetails  = "details"
)

// newApp builds the command line app. Output goes to stdout and logs to
// stderr; environment variables are read through lookup.
func newApp(stdout, stderr io.Writer, lookup config.LookupFunc) *cli.App {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	return &cli.App{
		Name:            constants.AppName,
		Usage:           constants.AppDescription,
		Version:         constants.AppVersion,
		ArgsUsage:       "hash_or_id",
		Description:     environmentEpilog,
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     flagSukebei,
				Aliases:  []string{"s"},
				Usage:    "Query torrent info on sukebei.Nyaa.si",
				Category: "Connection options",
			},
			&cli.StringFlag{
				Name:     flagUser,
				Aliases:  []string{"u"},
				Usage:    "Username or email",
				Category: "Connection options",
			},
			&cli.StringFlag{
				Name:     flagPassword,
				Aliases:  []string{"p"},
				Usage:    "Password",
				Category: "Connection options",
			},
			&cli.StringFlag{
				Name:     flagHost,
				Usage:    "Select another api host (for debugging purposes)",
				Category: "Connection options",
			},
			&cli.BoolFlag{
				Name:  flagRaw,
				Usage: "Print only raw response (JSON)",
			},
			&cli.BoolFlag{
				Name:    flagDetails,
				Aliases: []string{"d"},
				Usage:   "Also print stats, parsed release info and magnet trackers",
			},
		},
		Action: func(c *cli.Context) error {
			return runQuery(c, stdout, stderr, lookup)
		},
	}
}

func runQuery(c *cli.Context, stdout, stderr io.Writer, lookup config.LookupFunc) error {
	if c.NArg() != 1 {
		return errors.NewUsageError(fmt.Sprintf("expected exactly one hash_or_id argument, got %d", c.NArg()))
	}

	target, err := models.ParseTarget(c.Args().First())
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(config.Flags{
		Host:     c.String(flagHost),
		Username: c.String(flagUser),
		Password: c.String(flagPassword),
		Sukebei:  c.Bool(flagSukebei),
	}, lookup)
	if err != nil {
		return err
	}

	level, _ := lookup(constants.EnvLogLevel)
	log := logger.NewWithOutput(stderr, level)
	log.Debugf("[App] querying %s on %s", target, cfg.Host)

	service := services.NewNyaa(cfg, httputil.NewHTTPClient(constants.RequestTimeout), log)
	handler := handlers.New(service, stdout, log)

	return handler.HandleInfo(c.Context, target, handlers.Options{
		Raw:     c.Bool(flagRaw),
		Details: c.Bool(flagDetails),
	})
}
