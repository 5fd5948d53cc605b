package dedupe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapBackendUpsert(t *testing.T) {
	m := NewMapBackend()
	require.False(t, m.Upsert("abc"))
	require.False(t, m.Upsert("bcd"))
	require.True(t, m.Upsert("abc"), "second insert must report a duplicate")
	require.Equal(t, 2, m.Len())
	m.Cleanup()
}

func TestLevelDBBackendUpsert(t *testing.T) {
	l := NewLevelDBBackend()
	defer l.Cleanup()
	require.False(t, l.Upsert("abc"))
	require.True(t, l.Upsert("abc"))
	require.False(t, l.Upsert("bcd"))
	require.Equal(t, 2, l.Len())
}
