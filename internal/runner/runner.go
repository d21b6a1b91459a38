package runner

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"geodeplan/internal/models"
	"geodeplan/internal/solver/geode"
)

// Result is the outcome of one blueprint search
type Result struct {
	Blueprint *models.Blueprint
	Geodes    int
	Elapsed   time.Duration
}

// QualityLevel is the blueprint's contribution to the quality-level sum
func (r Result) QualityLevel() int {
	return r.Blueprint.ID * r.Geodes
}

// Runner executes independent blueprint searches, optionally in parallel.
// Searches share no mutable state, so the only coordination is the
// worker limit.
type Runner struct {
	Workers int // <= 0 means one worker per CPU
}

// New creates a runner with the given worker count
func New(workers int) *Runner {
	return &Runner{Workers: workers}
}

// Run searches every blueprint with the given time budget and returns
// one result per blueprint, in input order. Each worker writes to its
// own slot of the pre-sized result slice, so no locking is needed.
// A cancelled context stops dispatching further searches; a search
// already underway runs to exhaustion.
func (r *Runner) Run(ctx context.Context, blueprints []*models.Blueprint, minutes int) ([]Result, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(blueprints))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, bp := range blueprints {
		i, bp := i, bp
		eg.Go(func() error {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			default:
			}

			start := time.Now()
			geodes := geode.NewSolver(bp).MaxGeodes(minutes)
			results[i] = Result{
				Blueprint: bp,
				Geodes:    geodes,
				Elapsed:   time.Since(start),
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Subset returns the blueprints with ID <= maxID, preserving order
func Subset(blueprints []*models.Blueprint, maxID int) []*models.Blueprint {
	var subset []*models.Blueprint
	for _, bp := range blueprints {
		if bp.ID <= maxID {
			subset = append(subset, bp)
		}
	}
	return subset
}

// QualityLevelSum sums blueprint_id * max_geodes over all results
func QualityLevelSum(results []Result) int {
	sum := 0
	for _, r := range results {
		sum += r.QualityLevel()
	}
	return sum
}

// GeodeProduct multiplies the geode counts of all results
func GeodeProduct(results []Result) int {
	product := 1
	for _, r := range results {
		product *= r.Geodes
	}
	return product
}
