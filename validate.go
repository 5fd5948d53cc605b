package superx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/projectdiscovery/utils/errkit"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

var (
	ErrMissingSubstring = errkit.New("superstring does not contain every input string")
)

// Validate checks that every string in strs occurs in superstring.
// strs should be the input before substring filtering.
func Validate(strs []string, superstring string) error {
	var missing []string
	for _, s := range strs {
		if !strings.Contains(superstring, s) {
			missing = append(missing, strconv.Quote(s))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	missing = sliceutil.Dedupe(missing)
	return fmt.Errorf("%w: missing %v: %v", ErrMissingSubstring, len(missing), strings.Join(missing, ", "))
}
