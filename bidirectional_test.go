package superx

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBidirectionalSolve(t *testing.T) {
	testcases := []struct {
		name     string
		input    []string
		expected string
	}{
		{name: "chain", input: []string{"AAG", "AGT", "GTT"}, expected: "AAGTT"},
		{name: "single", input: []string{"hello"}, expected: "hello"},
		{name: "empty", input: nil, expected: ""},
		// both strings have max overlap 1, the higher index seeds
		{name: "seed tie", input: []string{"bc", "ab"}, expected: "abc"},
		{name: "left extension", input: []string{"xab", "abc"}, expected: "xabc"},
		// "xa" appended and "ab" prepended both overlap by 1, right wins
		{name: "right preferred", input: []string{"xa", "ab", "bx"}, expected: "bxab"},
		{name: "fallback concatenation", input: []string{"ab", "cd", "ef"}, expected: "efabcd"},
	}
	for _, v := range testcases {
		t.Run(v.name, func(t *testing.T) {
			require.Equal(t, v.expected, BidirectionalSolve(v.input))
		})
	}
}

func TestBidirectionalNeverBeatsExact(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		strs := RemoveSubstrings(randomStrings(r, 2+r.Intn(8), 6, "abc"), DuplicatesKeepFirst)
		got := BidirectionalSolve(strs)
		require.Nil(t, Validate(strs, got))
		require.GreaterOrEqual(t, len(got), len(ExactSolve(strs)))
	}
}
