package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string, out io.Writer) error {

	app := cli.App{
		Name:    "rbmap",
		Usage:   "drive a red-black tree map from scripts or generated keys",
		Version: versioninfo.Short(),
		Writer:  out,
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity (debug, info, warn, error)",
			Value:   "info",
			EnvVars: []string{"RBMAP_LOG_LEVEL", "LOG_LEVEL"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(log)
		return nil
	}
	app.Commands = []*cli.Command{
		cmdReplay,
		cmdFill,
	}
	return app.Run(args)
}
