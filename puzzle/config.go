// SPDX-License-Identifier: MIT

package puzzle

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// runnerConfig aggregates the Runner knobs. Options are applied in order;
// later ones override earlier ones.
type runnerConfig struct {
	dataDir   string
	inputName string
	logger    *logrus.Logger
	out       io.Writer
	parts     []Part
}

const (
	defaultDataDir   = "data"
	defaultInputName = "input.txt"
)

// Option customizes a Runner.
type Option func(*runnerConfig)

// WithDataDir sets the directory holding day<N>/ input folders.
func WithDataDir(dir string) Option {
	return func(c *runnerConfig) { c.dataDir = dir }
}

// WithInputName sets the file name looked up inside each day folder.
func WithInputName(name string) Option {
	return func(c *runnerConfig) { c.inputName = name }
}

// WithLogger routes run logs to l.
func WithLogger(l *logrus.Logger) Option {
	return func(c *runnerConfig) { c.logger = l }
}

// WithOutput sets where answers and visualizations are printed.
func WithOutput(w io.Writer) Option {
	return func(c *runnerConfig) { c.out = w }
}

// WithParts restricts which parts run. No parts means both.
func WithParts(parts ...Part) Option {
	return func(c *runnerConfig) { c.parts = parts }
}

func newRunnerConfig(opts ...Option) runnerConfig {
	cfg := runnerConfig{
		dataDir:   defaultDataDir,
		inputName: defaultInputName,
		logger:    logrus.StandardLogger(),
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	// Resolve empty values so the runner stays branch-free.
	if cfg.dataDir == "" {
		cfg.dataDir = defaultDataDir
	}
	if cfg.inputName == "" {
		cfg.inputName = defaultInputName
	}
	if cfg.logger == nil {
		cfg.logger = logrus.StandardLogger()
	}
	if cfg.out == nil {
		cfg.out = io.Discard
	}
	if len(cfg.parts) == 0 {
		cfg.parts = []Part{PartOne, PartTwo}
	}

	return cfg
}
