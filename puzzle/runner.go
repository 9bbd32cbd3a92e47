// SPDX-License-Identifier: MIT

package puzzle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// Result is the answer to one part of one day.
type Result struct {
	Day     int
	Part    Part
	Value   int
	Elapsed time.Duration
}

// Runner executes registered solvers against their input files.
type Runner struct {
	reg *Registry
	cfg runnerConfig
}

// NewRunner returns a Runner over reg.
func NewRunner(reg *Registry, opts ...Option) *Runner {
	return &Runner{reg: reg, cfg: newRunnerConfig(opts...)}
}

// InputPath returns <dataDir>/day<N>/<inputName>.
func (r *Runner) InputPath(day int) string {
	return filepath.Join(r.cfg.dataDir, fmt.Sprintf("day%d", day), r.cfg.inputName)
}

// Run solves day using the input resolved by InputPath.
func (r *Runner) Run(ctx context.Context, day int) ([]Result, error) {
	return r.RunFile(ctx, day, r.InputPath(day))
}

// RunFile solves day using the input at path. The file is reopened for each
// part, and ctx is checked before each one. Failures are returned, not
// logged; the caller decides how to report them.
func (r *Runner) RunFile(ctx context.Context, day int, path string) ([]Result, error) {
	s, err := r.reg.Lookup(day)
	if err != nil {
		return nil, err
	}
	log := r.cfg.logger.WithFields(logrus.Fields{"day": day, "input": path})

	results := make([]Result, 0, len(r.cfg.parts))
	for _, p := range r.cfg.parts {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := r.runPart(s, day, p, path)
		if err != nil {
			return results, fmt.Errorf("day %d part %s: %w", day, p, err)
		}
		log.WithFields(logrus.Fields{
			"part":    p,
			"result":  res.Value,
			"elapsed": res.Elapsed,
		}).Info("solved")
		if _, err := fmt.Fprintf(r.cfg.out, "Part %s result: %d\n", p, res.Value); err != nil {
			return results, fmt.Errorf("day %d part %s: write result: %w", day, p, err)
		}
		results = append(results, res)
	}

	return results, nil
}

func (r *Runner) runPart(s Solver, day int, p Part, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	start := time.Now()
	v, err := p.solve(s, f)
	if err != nil {
		return Result{}, err
	}

	return Result{Day: day, Part: p, Value: v, Elapsed: time.Since(start)}, nil
}

// Visualize renders the day's final state to the configured output.
func (r *Runner) Visualize(ctx context.Context, day int, path string) error {
	s, err := r.reg.Lookup(day)
	if err != nil {
		return err
	}
	v, ok := s.(Visualizer)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoVisualizer, day)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r.cfg.logger.WithFields(logrus.Fields{"day": day, "input": path}).Debug("visualizing")
	return v.Visualize(f, r.cfg.out)
}
