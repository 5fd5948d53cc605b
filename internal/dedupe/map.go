package dedupe

import "runtime/debug"

// MapBackend keeps seen strings in memory
type MapBackend struct {
	storage map[string]struct{}
}

func NewMapBackend() *MapBackend {
	return &MapBackend{storage: map[string]struct{}{}}
}

func (m *MapBackend) Upsert(elem string) bool {
	if _, ok := m.storage[elem]; ok {
		return true
	}
	m.storage[elem] = struct{}{}
	return false
}

func (m *MapBackend) Len() int {
	return len(m.storage)
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
	// large input sets leave a big map behind, hand it back to the OS right away
	debug.FreeOSMemory()
}
