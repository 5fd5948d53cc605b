package superx

import (
	errorutil "github.com/projectdiscovery/utils/errors"
)

// Options controls which solver runs and how the hybrid pipeline is tuned.
// DefaultOptions returns the values every tuning knob was designed around.
type Options struct {
	// Algorithm used by Engine.Run
	Algorithm Algorithm
	// LookaheadDepth used when the lookahead solver is selected directly
	LookaheadDepth int
	// ExactThreshold is the largest string count solved exactly
	// must not exceed MaxExactStrings
	ExactThreshold int
	// ClusterSize is the maximum number of strings per cluster
	ClusterSize int
	// ClusterLookaheadDepth is used for clusters above ExactThreshold
	ClusterLookaheadDepth int
	// MergeLookaheadDepth is used for the final merge when too many clusters remain
	MergeLookaheadDepth int
	// MaxLevels bounds the partition/solve rounds of the hybrid solver (min 2)
	MaxLevels int
	// DuplicatePolicy for identical input strings
	DuplicatePolicy DuplicatePolicy
}

// DefaultOptions returns the default solver options
func DefaultOptions() *Options {
	return &Options{
		Algorithm:             AlgorithmHybrid,
		LookaheadDepth:        3,
		ExactThreshold:        15,
		ClusterSize:           14,
		ClusterLookaheadDepth: 2,
		MergeLookaheadDepth:   3,
		MaxLevels:             2,
		DuplicatePolicy:       DuplicatesKeepFirst,
	}
}

// Validate checks that options are within the ranges the solvers support
func (o *Options) Validate() error {
	if _, ok := algorithmNames[o.Algorithm]; !ok {
		return errorutil.NewWithTag("superx", "unknown algorithm %d", o.Algorithm)
	}
	if o.ExactThreshold < 1 || o.ExactThreshold > MaxExactStrings {
		return errorutil.NewWithTag("superx", "exact threshold must be between 1 and %v got %v", MaxExactStrings, o.ExactThreshold)
	}
	if o.ClusterSize < 1 {
		return errorutil.NewWithTag("superx", "cluster size must be positive got %v", o.ClusterSize)
	}
	if o.LookaheadDepth < 0 || o.ClusterLookaheadDepth < 0 || o.MergeLookaheadDepth < 0 {
		return errorutil.NewWithTag("superx", "lookahead depth cannot be negative")
	}
	if o.MaxLevels < 2 {
		return errorutil.NewWithTag("superx", "hybrid solver needs at least 2 levels got %v", o.MaxLevels)
	}
	if o.DuplicatePolicy != DuplicatesKeepFirst && o.DuplicatePolicy != DuplicatesDropAll {
		return errorutil.NewWithTag("superx", "unknown duplicate policy %d", o.DuplicatePolicy)
	}
	return nil
}
