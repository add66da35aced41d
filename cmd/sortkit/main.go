// Command sortkit sorts numbers and strings using bubble sort.
//
// Items are passed as arguments or, when none are given, read as a
// comma-separated list from an interactive prompt. Each item is
// auto-detected as an integer, a float, or a string.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/sortkit/sortkit/bubble"
	sortcli "github.com/sortkit/sortkit/cli"
	"github.com/sortkit/sortkit/config"
	"github.com/sortkit/sortkit/item"
	"github.com/sortkit/sortkit/logger"
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "sortkit",
		Usage:     "sort numbers and strings with bubble sort",
		ArgsUsage: "[items...]",
		Description: `Sorts the given items and prints them space-separated. Numbers sort
numerically, strings lexicographically; a number cannot be ordered against
a string and aborts the sort with exit status 2.

Examples:
$ sortkit 5 1 4 3 2
$ sortkit -r banana apple cherry
$ sortkit -n item10 item2 item1
$ sortkit            # prompts for a comma-separated list`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "sort in descending order",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print the original and sorted sequences, and log at debug level",
			},
			&cli.BoolFlag{
				Name:    "natural",
				Aliases: []string{"n"},
				Usage:   "order strings naturally (item2 before item10)",
			},
			&cli.BoolFlag{
				Name:  "json-logs",
				Usage: "write logs as JSON",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "defaults file to load (default: ~/" + config.Filename + ")",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	path := config.DefaultPath()
	explicit := c.IsSet("config")

	if explicit {
		path = c.String("config")
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return cli.Exit("error: "+err.Error(), 1)
	}

	cfg = cfg.FromEnv()

	// An explicitly passed flag wins over file and env in both directions,
	// so --reverse=false undoes a configured default.
	if c.IsSet("reverse") {
		cfg.Descending = c.Bool("reverse")
	}

	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}

	if c.IsSet("natural") {
		cfg.Natural = c.Bool("natural")
	}

	if c.IsSet("json-logs") {
		cfg.JSONLogs = c.Bool("json-logs")
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	logger.ConfigureLoggingWithOptions(logger.Options{
		JSON:     cfg.JSONLogs,
		MinLevel: level,
		Output:   c.App.ErrWriter,
	})

	var items []item.Item

	if c.Args().Len() == 0 {
		items, err = sortcli.PromptItems("Enter items separated by commas (e.g. 3, 1, 2 or a, b, c)")
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
	} else {
		items = item.ParseAll(c.Args().Slice())
	}

	slog.Debug("sorting", "count", len(items), "descending", cfg.Descending, "natural", cfg.Natural)

	opts := make([]bubble.Option, 0, 2)

	if cfg.Descending {
		opts = append(opts, bubble.Descending())
	}

	if cfg.Natural {
		opts = append(opts, bubble.WithComparer(item.NaturalOrder))
	}

	sorted, err := bubble.Sort(items, opts...)
	if err != nil {
		var cmpErr *bubble.ComparisonError
		if errors.As(err, &cmpErr) {
			slog.Debug("sort failed", "error", logger.AnnotateError(err,
				"left_pos", cmpErr.LeftPos, "right_pos", cmpErr.RightPos))
		}

		return cli.Exit("error: "+err.Error(), 2)
	}

	out := c.App.Writer

	if cfg.Verbose {
		fmt.Fprintln(out, "Original:", item.Join(items, " "))
		fmt.Fprintln(out, "Sorted:  ", item.Join(sorted, " "))
	} else {
		fmt.Fprintln(out, item.Join(sorted, " "))
	}

	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
