package superx

import (
	"strings"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// DuplicatePolicy decides what happens to identical input strings
// before substring filtering.
type DuplicatePolicy int

const (
	// DuplicatesKeepFirst keeps the first copy of identical strings
	DuplicatesKeepFirst DuplicatePolicy = iota
	// DuplicatesDropAll applies the containment rule to identical copies too.
	// Every copy contains the others, so all of them are dropped.
	DuplicatesDropAll
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicatesKeepFirst:
		return "keep"
	case DuplicatesDropAll:
		return "drop"
	}
	return "unknown"
}

// ParseDuplicatePolicy parses `keep` or `drop`
func ParseDuplicatePolicy(value string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "keep":
		return DuplicatesKeepFirst, nil
	case "drop":
		return DuplicatesDropAll, nil
	}
	return 0, errorutil.NewWithTag("superx", "invalid duplicate policy %v (must be 'keep' or 'drop')", value)
}

// RemoveSubstrings drops every string that occurs inside another input string.
// Survivors keep their relative input order.
func RemoveSubstrings(strs []string, policy DuplicatePolicy) []string {
	if policy == DuplicatesKeepFirst {
		strs = collapseDuplicates(strs)
	}
	result := make([]string, 0, len(strs))
	for i := range strs {
		contained := false
		for j := range strs {
			if i != j && strings.Contains(strs[j], strs[i]) {
				contained = true
				break
			}
		}
		if !contained {
			result = append(result, strs[i])
		}
	}
	gologger.Verbose().Msgf("substring filter kept %v of %v strings", len(result), len(strs))
	return result
}
