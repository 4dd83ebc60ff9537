// Package orch mediates between the connection registry and the room table
// so every membership move keeps both in step.
package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/soundlink/relay/internal/app"
	"github.com/soundlink/relay/internal/core"
	"github.com/soundlink/relay/internal/domain"
)

type Orchestrator struct {
	Registry *app.Registry
	Rooms    *app.RoomManagerImpl
}

// Host creates a fresh room for the connection, leaving its current room
// first if it is bound to one.
func (o *Orchestrator) Host(sid core.ConnectionID) (core.RoomService, bool) {
	sess, ok := o.Registry.GetSession(sid)
	if !ok {
		return nil, false
	}
	prev, _, _ := o.Registry.RoomOf(sid)
	room := o.Rooms.HostRoom(sid, sess, prev)
	o.Registry.UpdateRoom(sid, room.Code())
	log.Info().Str("module", "app.orch").Str("sid", string(sid)).Str("room", string(room.Code())).Msg("hosted room")
	return room, true
}

// Join moves the connection into code and reports the members that were
// in the room before the move. An unknown code changes nothing, including
// any current membership.
func (o *Orchestrator) Join(sid core.ConnectionID, code domain.RoomCode) (core.RoomService, []core.PeerRef, bool) {
	sess, ok := o.Registry.GetSession(sid)
	if !ok {
		return nil, nil, false
	}
	prev, _, _ := o.Registry.RoomOf(sid)
	room, peers, ok := o.Rooms.JoinRoom(code, sid, sess, prev)
	if !ok {
		return nil, nil, false
	}
	o.Registry.UpdateRoom(sid, code)
	log.Info().Str("module", "app.orch").Str("sid", string(sid)).Str("room", string(code)).Msg("joined room")
	return room, peers, true
}

// Leave is idempotent: an unbound connection is a no-op.
func (o *Orchestrator) Leave(sid core.ConnectionID) {
	code, _, ok := o.Registry.RoomOf(sid)
	if !ok {
		return
	}
	o.Rooms.LeaveRoom(code, sid)
	o.Registry.ClearRoom(sid)
	log.Info().Str("module", "app.orch").Str("sid", string(sid)).Str("room", string(code)).Msg("left room")
}

// Disconnect runs the same cleanup as an explicit leave, then forgets the
// connection entirely.
func (o *Orchestrator) Disconnect(sid core.ConnectionID) {
	o.Leave(sid)
	o.Registry.Unbind(sid)
}

// RoomOf resolves the connection's current room, if any.
func (o *Orchestrator) RoomOf(sid core.ConnectionID) (core.RoomService, bool) {
	code, _, ok := o.Registry.RoomOf(sid)
	if !ok {
		return nil, false
	}
	return o.Rooms.GetRoom(code)
}

// FindSongOwner scans the requester's room for a peer advertising key.
// First match wins; with several owners the choice is arbitrary.
func (o *Orchestrator) FindSongOwner(sid core.ConnectionID, key domain.SongKey) (core.PeerRef, bool) {
	room, ok := o.RoomOf(sid)
	if !ok {
		return core.PeerRef{}, false
	}
	for _, peer := range room.Peers(sid) {
		if peer.Session.HasSong(key) {
			return peer, true
		}
	}
	return core.PeerRef{}, false
}
