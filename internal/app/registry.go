package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/soundlink/relay/internal/core"
	"github.com/soundlink/relay/internal/domain"
)

type connEntry struct {
	Room    domain.RoomCode
	Session core.MemberSession
	Cancel  context.CancelFunc
}

// Registry tracks every live connection and its at-most-one room binding.
type Registry struct {
	mu    sync.RWMutex
	conns map[core.ConnectionID]*connEntry
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[core.ConnectionID]*connEntry)}
}

func (r *Registry) BindSignal(sid core.ConnectionID, sess core.MemberSession, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[sid] = &connEntry{Session: sess, Cancel: cancel}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("bound signal")
}

func (r *Registry) GetSession(sid core.ConnectionID) (core.MemberSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.conns[sid]; ok {
		return e.Session, true
	}
	return nil, false
}

func (r *Registry) RoomOf(sid core.ConnectionID) (domain.RoomCode, core.MemberSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.conns[sid]
	if !ok || e.Room == "" {
		return "", nil, false
	}
	return e.Room, e.Session, true
}

func (r *Registry) UpdateRoom(sid core.ConnectionID, room domain.RoomCode) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.conns[sid]
	if !ok {
		return false
	}
	e.Room = room
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("room", string(room)).Msg("updated room")
	return true
}

func (r *Registry) ClearRoom(sid core.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.conns[sid]; ok {
		e.Room = ""
	}
}

// Unbind drops the connection and cancels its pumps. Safe to call for an
// already-unbound id.
func (r *Registry) Unbind(sid core.ConnectionID) {
	r.mu.Lock()
	e, ok := r.conns[sid]
	delete(r.conns, sid)
	r.mu.Unlock()
	if ok && e.Cancel != nil {
		e.Cancel()
	}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("unbind session")
}
