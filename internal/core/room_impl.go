package core

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/soundlink/relay/internal/domain"
)

// roomImpl is a threadsafe in-memory room.
// It never closes adapter-owned resources.
type roomImpl struct {
	code  domain.RoomCode
	mu    sync.RWMutex
	bySID map[ConnectionID]MemberSession
}

func NewRoomService(code domain.RoomCode) RoomService {
	return &roomImpl{
		code:  code,
		bySID: make(map[ConnectionID]MemberSession),
	}
}

func (r *roomImpl) Code() domain.RoomCode { return r.code }

func (r *roomImpl) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bySID)
}

func (r *roomImpl) Member(sid ConnectionID) (MemberSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ms, ok := r.bySID[sid]
	return ms, ok
}

func (r *roomImpl) Members() []PeerRef {
	return r.Peers("")
}

// Peers snapshots the membership minus one connection. Iteration order is
// map order: callers that pick "the first peer" get an arbitrary one.
func (r *roomImpl) Peers(exclude ConnectionID) []PeerRef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]PeerRef, 0, len(r.bySID))
	for sid, ms := range r.bySID {
		if sid == exclude {
			continue
		}
		out = append(out, PeerRef{ID: sid, Session: ms})
	}
	return out
}

func (r *roomImpl) AddMember(sid ConnectionID, ms MemberSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bySID[sid] = ms
	log.Info().Str("module", "core.room").Str("room", string(r.code)).Str("sid", string(sid)).Msg("member added")
}

func (r *roomImpl) RemoveMember(sid ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bySID, sid)
	log.Info().Str("module", "core.room").Str("room", string(r.code)).Str("sid", string(sid)).Msg("member removed")
}

// Broadcast fans data out to every member except from. An empty from
// reaches the whole room.
func (r *roomImpl) Broadcast(from ConnectionID, data Frame) PublishResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := PublishResult{}
	for sid, m := range r.bySID {
		if sid == from {
			continue
		}
		if err := m.Signal().TrySend(data); err != nil {
			res.Dropped++
			continue
		}
		res.SentTo++
	}
	log.Debug().Str("module", "core.room").Str("from", string(from)).Int("sent_to", res.SentTo).Int("dropped", res.Dropped).Msg("broadcast result")
	return res
}
