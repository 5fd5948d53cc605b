package superx

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dchest/siphash"
	"github.com/projectdiscovery/fasttemplate"
)

const (
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
)

// DefaultSummaryTemplate renders the run statistics of a Result
const DefaultSummaryTemplate = "algorithm={{algorithm}} strings={{strings}} filtered={{filtered}} length={{length}} digest={{digest}} elapsed={{elapsed}}"

// Result of a single solve
type Result struct {
	Superstring string
	Algorithm   Algorithm
	// Inputs is the number of strings before filtering
	Inputs int
	// Filtered is the number of strings left after substring filtering
	Filtered int
	// Elapsed is the time spent in the solver alone
	Elapsed time.Duration
}

// Len returns the length of the superstring
func (r *Result) Len() int {
	return len(r.Superstring)
}

// Digest returns a siphash fingerprint of the superstring.
// Equal superstrings always have equal digests so runs can be compared
// without keeping the output around.
func (r *Result) Digest() uint64 {
	return siphash.Hash(0, 0, []byte(r.Superstring))
}

// Vars returns the placeholders available to summary templates
func (r *Result) Vars() map[string]interface{} {
	return map[string]interface{}{
		"algorithm": r.Algorithm.String(),
		"strings":   r.Inputs,
		"filtered":  r.Filtered,
		"length":    r.Len(),
		"digest":    strconv.FormatUint(r.Digest(), 16),
		"elapsed":   r.Elapsed.Round(time.Millisecond),
	}
}

// Summary renders template with the result's vars, see DefaultSummaryTemplate.
// Unknown placeholders are left untouched.
func (r *Result) Summary(template string) string {
	if template == "" {
		template = DefaultSummaryTemplate
	}
	values := r.Vars()
	for k, v := range values {
		values[k] = fmt.Sprint(v)
	}
	return fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, values)
}
