// Package superx computes short superstrings: strings that contain every
// string of an input set as a contiguous substring.
//
// Finding the shortest one is NP-hard. Small inputs are solved exactly with a
// bitmask dynamic program; larger inputs use greedy heuristics or a hybrid
// that clusters overlapping strings and solves each cluster exactly.
package superx

import (
	"io"
	"time"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// Engine runs the filter, solve and validate pipeline with fixed options
type Engine struct {
	Options *Options
	solver  Solver
}

// New creates and returns a new engine from options.
// nil options means DefaultOptions.
func New(opts *Options) (*Engine, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	solver, err := opts.Algorithm.Solver(opts)
	if err != nil {
		return nil, err
	}
	return &Engine{Options: opts, solver: solver}, nil
}

// Run computes a superstring of strs.
// The returned error is non nil only if the produced superstring fails
// validation, which indicates a solver defect. An empty input yields an
// empty superstring.
func (e *Engine) Run(strs []string) (*Result, error) {
	filtered := RemoveSubstrings(strs, e.Options.DuplicatePolicy)
	res := e.solve(filtered, e.Options.Algorithm, e.solver)
	res.Inputs = len(strs)
	if err := Validate(strs, res.Superstring); err != nil {
		return res, err
	}
	return res, nil
}

// RunReader reads line delimited strings from r and runs the engine on them
func (e *Engine) RunReader(r io.Reader) (*Result, error) {
	strs, err := ReadStrings(r)
	if err != nil {
		return nil, errorutil.NewWithTag("superx", "failed to read input got %v", err)
	}
	return e.Run(strs)
}

func (e *Engine) solve(filtered []string, algorithm Algorithm, solver Solver) *Result {
	start := time.Now()
	superstring := solver.Solve(filtered)
	res := &Result{
		Superstring: superstring,
		Algorithm:   algorithm,
		Filtered:    len(filtered),
		Elapsed:     time.Since(start),
	}
	gologger.Verbose().Msgf("%v: %v strings merged into %v bytes in %v", algorithm, len(filtered), len(superstring), res.Elapsed)
	return res
}
