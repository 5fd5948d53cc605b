package superx

import (
	"fmt"
	"strings"

	"github.com/projectdiscovery/utils/errkit"
)

var (
	ErrUnknownAlgorithm = errkit.New("unknown algorithm")
)

// Algorithm is a top level solving strategy selectable by name
type Algorithm int

const (
	// AlgorithmHybrid clusters the input and solves clusters exactly
	AlgorithmHybrid Algorithm = iota
	// AlgorithmLookahead chains strings greedily with one step lookahead
	AlgorithmLookahead
	// AlgorithmBidirectional grows a string from a seed at both ends
	AlgorithmBidirectional
)

var algorithmNames = map[Algorithm]string{
	AlgorithmHybrid:        "hybrid",
	AlgorithmLookahead:     "lookahead",
	AlgorithmBidirectional: "bidirectional",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Algorithms returns every selectable algorithm
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmLookahead, AlgorithmBidirectional, AlgorithmHybrid}
}

// ParseAlgorithm returns the algorithm with the given name
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, v := range algorithmNames {
		if v == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (must be one of lookahead, bidirectional, hybrid)", ErrUnknownAlgorithm, name)
}

// Solver produces a superstring of an already filtered string set
type Solver interface {
	Solve(strs []string) string
}

// ExactSolver wraps ExactSolve. It is only reached through the hybrid
// solver's small input path and is not selectable by name.
type ExactSolver struct{}

func (ExactSolver) Solve(strs []string) string { return ExactSolve(strs) }

// LookaheadSolver wraps LookaheadSolve with a fixed depth
type LookaheadSolver struct {
	Depth int
}

func (l LookaheadSolver) Solve(strs []string) string { return LookaheadSolve(strs, l.Depth) }

// BidirectionalSolver wraps BidirectionalSolve
type BidirectionalSolver struct{}

func (BidirectionalSolver) Solve(strs []string) string { return BidirectionalSolve(strs) }

// HybridSolver wraps HybridSolve
type HybridSolver struct {
	Options *Options
}

func (h HybridSolver) Solve(strs []string) string { return HybridSolve(strs, h.Options) }

// Solver returns the solver implementing a configured with opts
func (a Algorithm) Solver(opts *Options) (Solver, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	switch a {
	case AlgorithmLookahead:
		return LookaheadSolver{Depth: opts.LookaheadDepth}, nil
	case AlgorithmBidirectional:
		return BidirectionalSolver{}, nil
	case AlgorithmHybrid:
		return HybridSolver{Options: opts}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
}
