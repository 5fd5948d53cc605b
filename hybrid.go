package superx

import "github.com/projectdiscovery/gologger"

// HybridSolve combines the exact solver with clustering so inputs larger than
// the exact solver's range still get exact treatment locally.
//
// Inputs of at most opts.ExactThreshold strings are solved exactly. Larger
// inputs are partitioned into clusters of opts.ClusterSize, each cluster is
// solved on its own and the cluster superstrings become the strings of the
// next level. The last of opts.MaxLevels levels merges whatever is left with
// the exact solver if it fits, otherwise with the lookahead heuristic.
func HybridSolve(strs []string, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}
	working := strs
	for level := 1; ; level++ {
		if len(working) == 0 {
			return ""
		}
		if len(working) <= opts.ExactThreshold {
			return ExactSolve(working)
		}
		if level >= opts.MaxLevels {
			gologger.Verbose().Msgf("hybrid: level %v merging %v strings with lookahead depth %v", level, len(working), opts.MergeLookaheadDepth)
			return LookaheadSolve(working, opts.MergeLookaheadDepth)
		}
		working = solveClusters(working, opts)
		gologger.Verbose().Msgf("hybrid: level %v reduced input to %v cluster superstrings", level, len(working))
	}
}

// solveClusters partitions strs and returns one superstring per cluster
func solveClusters(strs []string, opts *Options) []string {
	clusters := Partition(NewOverlapMatrix(strs), opts.ClusterSize)
	results := make([]string, 0, len(clusters))
	for _, cluster := range clusters {
		members := make([]string, 0, len(cluster))
		for _, idx := range cluster {
			members = append(members, strs[idx])
		}
		if len(members) <= opts.ExactThreshold {
			results = append(results, ExactSolve(members))
		} else {
			results = append(results, LookaheadSolve(members, opts.ClusterLookaheadDepth))
		}
	}
	return results
}
