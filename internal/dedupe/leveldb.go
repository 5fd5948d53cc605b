package dedupe

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
)

// LevelDBBackend keeps seen strings in a disk backed hybrid map.
// Used when the input is too large to track in memory.
type LevelDBBackend struct {
	storage *hybrid.HybridMap
	count   int
}

func NewLevelDBBackend() *LevelDBBackend {
	l := &LevelDBBackend{}
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		gologger.Fatal().Msgf("failed to create temp dir for superx dedupe got: %v", err)
	}
	l.storage = db
	return l
}

func (l *LevelDBBackend) Upsert(elem string) bool {
	if _, ok := l.storage.Get(elem); ok {
		return true
	}
	if err := l.storage.Set(elem, nil); err != nil {
		gologger.Error().Msgf("dedupe: leveldb: got %v while writing %v", err, elem)
	}
	l.count++
	return false
}

func (l *LevelDBBackend) Len() int {
	return l.count
}

func (l *LevelDBBackend) Cleanup() {
	_ = l.storage.Close()
}
