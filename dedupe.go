package superx

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/superx/internal/dedupe"
)

// MaxInMemoryDedupeSize (default : 100 MB)
var MaxInMemoryDedupeSize = 100 * 1024 * 1024

type DedupeBackend interface {
	// Upsert adds elem to the backend and reports whether it was already present
	Upsert(elem string) bool
	// Cleanup cleans any residuals after deduping
	Cleanup()
}

// newDedupeBackend picks a backend for byteLen bytes of input
func newDedupeBackend(byteLen int) DedupeBackend {
	if byteLen <= MaxInMemoryDedupeSize {
		return dedupe.NewMapBackend()
	}
	gologger.Verbose().Msgf("input is %v bytes, deduping on disk", byteLen)
	return dedupe.NewLevelDBBackend()
}

// collapseDuplicates keeps the first occurrence of every string
// and preserves the relative order of the survivors
func collapseDuplicates(strs []string) []string {
	byteLen := 0
	for _, s := range strs {
		byteLen += len(s)
	}
	backend := newDedupeBackend(byteLen)
	defer backend.Cleanup()

	result := make([]string, 0, len(strs))
	for _, s := range strs {
		if backend.Upsert(s) {
			continue
		}
		result = append(result, s)
	}
	if dropped := len(strs) - len(result); dropped > 0 {
		gologger.Warning().Msgf("%v duplicate strings found in input. purging them..", dropped)
	}
	return result
}
