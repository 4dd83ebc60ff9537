package core

import (
	"sync"

	"github.com/soundlink/relay/internal/domain"
)

// memberSession pairs a transport endpoint with the connection's last
// shared library. The key set is recomputed on every replacement so
// availability lookups stay O(1).
type memberSession struct {
	signal SignalConnection

	mu      sync.RWMutex
	library domain.Library
	keys    map[domain.SongKey]struct{}
}

func NewMemberSession(signal SignalConnection) MemberSession {
	return &memberSession{signal: signal}
}

func (m *memberSession) Signal() SignalConnection { return m.signal }

func (m *memberSession) Library() domain.Library {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.library
}

func (m *memberSession) SetLibrary(lib domain.Library) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.library = lib
	m.keys = lib.KeySet()
}

func (m *memberSession) HasSong(key domain.SongKey) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.keys[key]
	return ok
}
