package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/vbauerster/iterbar"
)

const (
	flagDisable  = "disable"
	flagInterval = "interval"
	flagUnit     = "unit"
	flagWidth    = "width"
	flagStyle    = "style"
	flagColor    = "color"
	flagConfig   = "config"
	flagLogLevel = "log-level"
)

// ErrUsage is returned when positional arguments are wrong.
var ErrUsage = errors.New("invalid usage")

// fsFactory returns the filesystem commands operate on.
var fsFactory = afero.NewOsFs

// app carries state resolved once in the root Before hook down to
// every command action.
type app struct {
	cfg iterbar.Config
	log *logrus.Logger
	fs  afero.Fs
}

func newApp() *cli.Command {
	return (&app{log: logrus.New()}).command()
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "iterbar",
		Usage:     "progress bars over loops, worker pools and transfers",
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDisable,
				Usage:   "Suppress all progress output",
				Sources: cli.EnvVars("ITERBAR_DISABLE", "CI"),
			},
			&cli.DurationFlag{
				Name:  flagInterval,
				Usage: "Minimum interval between renders",
			},
			&cli.StringFlag{
				Name:  flagUnit,
				Usage: "Unit label of counted items",
			},
			&cli.IntFlag{
				Name:  flagWidth,
				Usage: "Line width, defaults to terminal width",
			},
			&cli.StringFlag{
				Name:  flagStyle,
				Usage: "Line style: default, minimal or detailed",
			},
			&cli.BoolFlag{
				Name:  flagColor,
				Usage: "Color the line by progress",
			},
			&cli.StringFlag{
				Name:      flagConfig,
				Aliases:   []string{"c"},
				Usage:     "YAML file with defaults for the flags above",
				TakesFile: true,
				Sources:   cli.EnvVars("ITERBAR_CONFIG"),
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "Log level: debug, info, warn or error",
				Value: "info",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.loopCmd(),
			a.manualCmd(),
			a.nestedCmd(),
			a.postfixCmd(),
			a.parallelCmd(),
			a.copyCmd(),
			a.copyTreeCmd(),
			a.downloadCmd(),
			a.blobCmd(),
		},
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	root := cmd.Root()
	a.log.SetOutput(root.ErrWriter)
	a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cmd.String(flagLogLevel))
	if err != nil {
		return ctx, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	a.log.SetLevel(level)

	a.fs = fsFactory()

	var fc fileConfig
	if name := cmd.String(flagConfig); name != "" {
		if fc, err = loadFileConfig(a.fs, name); err != nil {
			return ctx, err
		}
	}
	cfg, err := resolveConfig(cmd, fc)
	if err != nil {
		return ctx, err
	}
	cfg.Output = root.ErrWriter
	cfg.DebugOutput = logWriter{a.log.WithField("component", "iterbar")}
	a.cfg = cfg

	a.log.WithFields(logrus.Fields{
		"disabled": cfg.Disabled,
		"interval": cfg.MinInterval,
		"unit":     cfg.Unit,
	}).Debug("configuration resolved")
	return ctx, nil
}

// barOptions returns resolved configuration followed by opts.
func (a *app) barOptions(opts ...iterbar.BarOption) []iterbar.BarOption {
	return append(a.cfg.Options(), opts...)
}

// logWriter forwards bar diagnostics to the logger.
type logWriter struct {
	log logrus.FieldLogger
}

func (w logWriter) Write(p []byte) (int, error) {
	w.log.Debug(strings.TrimSpace(string(p)))
	return len(p), nil
}

func usage(cmd *cli.Command) error {
	return fmt.Errorf("%w: %s %s", ErrUsage, cmd.FullName(), cmd.ArgsUsage)
}
