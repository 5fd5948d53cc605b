package superx

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineRun(t *testing.T) {
	for _, algorithm := range Algorithms() {
		opts := DefaultOptions()
		opts.Algorithm = algorithm
		e, err := New(opts)
		require.Nil(t, err)

		res, err := e.Run([]string{"hello"})
		require.Nil(t, err)
		require.Equal(t, "hello", res.Superstring, algorithm.String())

		res, err = e.Run([]string{"AAG", "AG", "AGT", "GTT", "AGT"})
		require.Nil(t, err)
		require.Equal(t, "AAGTT", res.Superstring, algorithm.String())
		require.Equal(t, 5, res.Inputs)
		require.Equal(t, 3, res.Filtered)
		require.Equal(t, algorithm, res.Algorithm)
	}
}

func TestEngineRunEmpty(t *testing.T) {
	e, err := New(nil)
	require.Nil(t, err)
	res, err := e.Run(nil)
	require.Nil(t, err)
	require.Equal(t, "", res.Superstring)
}

func TestEngineRunDropAllDuplicates(t *testing.T) {
	opts := DefaultOptions()
	opts.DuplicatePolicy = DuplicatesDropAll
	e, err := New(opts)
	require.Nil(t, err)

	// every copy of "ab" is dropped so the superstring loses it
	res, err := e.Run([]string{"ab", "ab", "cd"})
	require.True(t, errors.Is(err, ErrMissingSubstring), "got %v", err)
	require.Equal(t, "cd", res.Superstring)

	opts.DuplicatePolicy = DuplicatesKeepFirst
	e, err = New(opts)
	require.Nil(t, err)
	res, err = e.Run([]string{"ab", "ab", "cd"})
	require.Nil(t, err)
	require.Equal(t, "cdab", res.Superstring)
}

func TestEngineRunReader(t *testing.T) {
	e, err := New(nil)
	require.Nil(t, err)
	res, err := e.RunReader(strings.NewReader("abc\nbcd\n\ncde\n"))
	require.Nil(t, err)
	require.Equal(t, "abcde", res.Superstring)
}

func TestNewInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.ExactThreshold = 40
	_, err := New(opts)
	require.NotNil(t, err)
}

func TestEngineCompare(t *testing.T) {
	e, err := New(nil)
	require.Nil(t, err)

	strs := []string{"bc", "ab", "cd"}
	results, err := e.Compare(context.Background(), strs)
	require.Nil(t, err)
	require.Len(t, results, 3)
	for i, algorithm := range Algorithms() {
		require.Equal(t, algorithm, results[i].Algorithm)
		require.Nil(t, Validate(strs, results[i].Superstring))
	}
	require.Equal(t, "bcdab", results[0].Superstring, "lookahead starts from the first string")
	best := Shortest(results)
	require.Equal(t, "abcd", best.Superstring)

	results, err = e.Compare(context.Background(), strs, AlgorithmHybrid, AlgorithmHybrid)
	require.Nil(t, err)
	require.Len(t, results, 1)
}

func TestEngineCompareCancelled(t *testing.T) {
	e, err := New(nil)
	require.Nil(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Compare(ctx, []string{"ab", "bc"})
	require.True(t, errors.Is(err, context.Canceled))
}

func TestShortest(t *testing.T) {
	require.Nil(t, Shortest(nil))
	a := &Result{Superstring: "abcd"}
	b := &Result{Superstring: "abce"}
	c := &Result{Superstring: "abcde"}
	require.Same(t, a, Shortest([]*Result{c, nil, a, b}))
}
