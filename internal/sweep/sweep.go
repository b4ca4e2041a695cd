// Package sweep runs many independent seeded boards headlessly and reports
// how long each stays active.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"lifefb/internal/patterns"
	"lifefb/internal/sims/life"

	"golang.org/x/sync/errgroup"
)

// Options describes a batch of runs.
type Options struct {
	Width, Height int
	Scene         string
	FirstSeed     int64
	Seeds         int
	Generations   int
	Workers       int
}

// ErrBadOptions is returned when Options cannot describe a batch.
var ErrBadOptions = errors.New("sweep: bad options")

func (o Options) validate() error {
	switch {
	case o.Width < 1 || o.Height < 1:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrBadOptions, o.Width, o.Height)
	case o.Seeds < 0:
		return fmt.Errorf("%w: seed count must not be negative, got %d", ErrBadOptions, o.Seeds)
	case o.Generations < 0:
		return fmt.Errorf("%w: generation budget must not be negative, got %d", ErrBadOptions, o.Generations)
	}
	return nil
}

// Outcome classifies how a run ended.
type Outcome string

const (
	// Extinct means every cell died.
	Extinct Outcome = "extinct"
	// Static means the board stopped changing.
	Static Outcome = "static"
	// Oscillating means the board returned to the state two generations back.
	Oscillating Outcome = "period-2"
	// Active means the generation budget ran out first.
	Active Outcome = "active"
)

// Result summarises one seeded run.
type Result struct {
	Seed        int64
	Outcome     Outcome
	SettledAt   uint64
	Peak        int
	Final       int
	Generations uint64
}

// Run measures every seed in parallel, bounded by Options.Workers, and
// returns the results ordered by how long each board stayed active.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if _, err := patterns.Lookup(opts.Scene); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	results := make([]Result, opts.Seeds)
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i := range results {
		seed := opts.FirstSeed + int64(i)
		g.Go(func() error {
			res, err := Measure(ctx, opts, seed)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	Rank(results)
	return results, nil
}

// Measure runs a single seed until it settles or the generation budget is
// spent.
func Measure(ctx context.Context, opts Options, seed int64) (Result, error) {
	l := life.New(opts.Width, opts.Height, time.Millisecond)
	if err := patterns.Apply(l, opts.Scene, seed); err != nil {
		return Result{}, err
	}
	res := Result{Seed: seed, Outcome: Active, Peak: l.Population()}
	prev := slices.Clone(l.Cells())
	var prev2 []bool
	for gen := 0; gen < opts.Generations; gen++ {
		if gen%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		l.Step()
		cells := l.Cells()
		pop := l.Population()
		res.Peak = max(res.Peak, pop)

		switch {
		case pop == 0:
			res.Outcome = Extinct
		case slices.Equal(cells, prev):
			res.Outcome = Static
		case prev2 != nil && slices.Equal(cells, prev2):
			res.Outcome = Oscillating
		}
		if res.Outcome != Active {
			res.SettledAt = l.Generation()
			break
		}
		prev2, prev = prev, append(prev2[:0], cells...)
	}
	res.Final = l.Population()
	res.Generations = l.Generation()
	return res, nil
}

// Rank orders results longest-lived first: still-active runs lead, then by
// settle generation, then by peak population.
func Rank(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if (a.Outcome == Active) != (b.Outcome == Active) {
			return a.Outcome == Active
		}
		if a.SettledAt != b.SettledAt {
			return a.SettledAt > b.SettledAt
		}
		return a.Peak > b.Peak
	})
}
