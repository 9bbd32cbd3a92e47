// SPDX-License-Identifier: MIT

// Command aoc runs one day's puzzle solver against its input file.
//
//	aoc --day 6                       # data/day6/input.txt, both parts
//	aoc --day 8 --input example.txt   # explicit file
//	aoc --day 6 --part 2 --verbose
//	aoc --day 8 --visualize
package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/katalvlaran/aoc2024/puzzle"
)

var errNoDay = errors.New("aoc: --day is required")

func main() {
	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}

	app := newApp(log, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Error("aoc failed")
		os.Exit(1)
	}
}

func newApp(log *logrus.Logger, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "aoc"
	app.Usage = "solve one day of the puzzle calendar"
	app.HideVersion = true
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "day, d", Usage: "day number to run (required)"},
		cli.StringFlag{Name: "data", Value: "data", Usage: "directory holding day<N>/ input folders"},
		cli.StringFlag{Name: "input, i", Usage: "input file; overrides --data layout"},
		cli.IntFlag{Name: "part, p", Usage: "1 or 2; 0 runs both"},
		cli.BoolFlag{Name: "visualize", Usage: "draw the final grid instead of printing answers"},
		cli.BoolFlag{Name: "verbose", Usage: "debug logging"},
	}
	app.Action = func(c *cli.Context) error {
		return run(context.Background(), c, log, out)
	}

	return app
}

func run(ctx context.Context, c *cli.Context, log *logrus.Logger, out io.Writer) error {
	if c.Bool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}
	day := c.Int("day")
	if day == 0 {
		return errNoDay
	}

	opts := []puzzle.Option{
		puzzle.WithDataDir(c.String("data")),
		puzzle.WithLogger(log),
		puzzle.WithOutput(out),
	}
	if n := c.Int("part"); n != 0 {
		p, err := puzzle.ParsePart(n)
		if err != nil {
			return err
		}
		opts = append(opts, puzzle.WithParts(p))
	}

	reg, err := registry()
	if err != nil {
		return err
	}
	r := puzzle.NewRunner(reg, opts...)

	path := c.String("input")
	if path == "" {
		path = r.InputPath(day)
	}
	log.WithFields(logrus.Fields{"day": day, "input": path}).Debug("starting")

	if c.Bool("visualize") {
		return r.Visualize(ctx, day, path)
	}
	_, err = r.RunFile(ctx, day, path)
	return err
}
