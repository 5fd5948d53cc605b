package superx

import (
	"context"

	sliceutil "github.com/projectdiscovery/utils/slice"
	"golang.org/x/sync/errgroup"
)

// Compare filters strs once and runs every algorithm in algorithms on the
// result. Each solve runs in its own goroutine and owns all of its tables;
// the filtered input is only read. Results come back in the order of
// algorithms and each one is validated against strs.
//
// Solves that have not started when ctx is cancelled are skipped and
// ctx.Err() is returned.
func (e *Engine) Compare(ctx context.Context, strs []string, algorithms ...Algorithm) ([]*Result, error) {
	if len(algorithms) == 0 {
		algorithms = Algorithms()
	}
	algorithms = sliceutil.Dedupe(algorithms)

	solvers := make([]Solver, len(algorithms))
	for i, algorithm := range algorithms {
		solver, err := algorithm.Solver(e.Options)
		if err != nil {
			return nil, err
		}
		solvers[i] = solver
	}

	filtered := RemoveSubstrings(strs, e.Options.DuplicatePolicy)
	results := make([]*Result, len(algorithms))
	g, gctx := errgroup.WithContext(ctx)
	for i := range algorithms {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := e.solve(filtered, algorithms[i], solvers[i])
			res.Inputs = len(strs)
			results[i] = res
			return Validate(strs, res.Superstring)
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Shortest returns the result with the shortest superstring.
// Ties keep the earliest result.
func Shortest(results []*Result) *Result {
	var best *Result
	for _, res := range results {
		if res == nil {
			continue
		}
		if best == nil || res.Len() < best.Len() {
			best = res
		}
	}
	return best
}
