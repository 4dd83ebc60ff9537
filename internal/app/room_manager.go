package app

import (
	"math/rand/v2"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/soundlink/relay/internal/core"
	"github.com/soundlink/relay/internal/domain"
)

// RoomManagerImpl owns the live-room table. Every membership change goes
// through its mutex so "remove member" and "drop the room when it empties"
// happen as one step and an empty room is never observable.
type RoomManagerImpl struct {
	mu    sync.Mutex
	rooms map[domain.RoomCode]core.RoomService
}

func NewRoomManager() *RoomManagerImpl {
	return &RoomManagerImpl{rooms: make(map[domain.RoomCode]core.RoomService)}
}

func (f *RoomManagerImpl) GetRoom(code domain.RoomCode) (core.RoomService, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[code]
	return room, ok
}

// HostRoom creates a room under a fresh code and moves the connection into
// it, leaving prev (if any) behind.
func (f *RoomManagerImpl) HostRoom(sid core.ConnectionID, sess core.MemberSession, prev domain.RoomCode) core.RoomService {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeLocked(prev, sid)

	var code domain.RoomCode
	for {
		code = randomRoomCode()
		if _, taken := f.rooms[code]; !taken {
			break
		}
	}
	room := core.NewRoomService(code)
	f.rooms[code] = room
	room.AddMember(sid, sess)
	log.Info().Str("module", "app.rooms").Str("room", string(code)).Str("sid", string(sid)).Msg("room created")
	return room
}

// JoinRoom moves the connection into code, leaving prev (if any) behind,
// and reports the members that were already there. When code is unknown
// nothing changes, prev membership included. Re-joining the current room
// keeps the membership in place rather than cycling it through empty.
func (f *RoomManagerImpl) JoinRoom(code domain.RoomCode, sid core.ConnectionID, sess core.MemberSession, prev domain.RoomCode) (core.RoomService, []core.PeerRef, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[code]
	if !ok {
		return nil, nil, false
	}
	peers := room.Peers(sid)
	if prev != code {
		f.removeLocked(prev, sid)
	}
	room.AddMember(sid, sess)
	return room, peers, true
}

func (f *RoomManagerImpl) LeaveRoom(code domain.RoomCode, sid core.ConnectionID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeLocked(code, sid)
}

func (f *RoomManagerImpl) removeLocked(code domain.RoomCode, sid core.ConnectionID) {
	if code == "" {
		return
	}
	room, ok := f.rooms[code]
	if !ok {
		return
	}
	room.RemoveMember(sid)
	if room.MemberCount() == 0 {
		delete(f.rooms, code)
		log.Info().Str("module", "app.rooms").Str("room", string(code)).Msg("room emptied, removed")
	}
}

func (f *RoomManagerImpl) List() []core.RoomInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]core.RoomInfo, 0, len(f.rooms))
	for code, r := range f.rooms {
		out = append(out, core.RoomInfo{Code: code, MemberCount: r.MemberCount()})
	}
	return out
}

func randomRoomCode() domain.RoomCode {
	b := make([]byte, domain.RoomCodeLen)
	for i := range b {
		b[i] = domain.RoomCodeAlphabet[rand.IntN(len(domain.RoomCodeAlphabet))]
	}
	return domain.RoomCode(b)
}
