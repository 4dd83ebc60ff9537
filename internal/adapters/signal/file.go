package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/soundlink/relay/internal/core"
	"github.com/soundlink/relay/internal/domain"
)

// handleRequestSongFile starts a peer-to-peer transfer: pick a room peer
// advertising the key and hand it the request together with the
// requester's id, so its chunks can find their way back.
func (ctl *SignalWSController) handleRequestSongFile(
	sid core.ConnectionID,
	conn core.SignalConnection,
	data []byte,
) {
	type requestPayload struct {
		Type    string `json:"type"`
		SongKey string `json:"songKey"`
	}
	var p requestPayload
	if err := json.Unmarshal(data, &p); err != nil || p.SongKey == "" {
		ctl.sendError(conn, "malformed message")
		return
	}
	if _, ok := ctl.Orch.RoomOf(sid); !ok {
		ctl.sendError(conn, "not in a room")
		return
	}
	owner, ok := ctl.Orch.FindSongOwner(sid, domain.SongKey(p.SongKey))
	if !ok {
		ctl.sendError(conn, "no one in the room shares that song")
		return
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("owner", string(owner.ID)).Str("key", p.SongKey).Msg("song file requested")
	ctl.sendJSON(owner.Session.Signal(), struct {
		Type      string            `json:"type"`
		SongKey   string            `json:"songKey"`
		Requester core.ConnectionID `json:"requester"`
	}{"requestSongFile", p.SongKey, sid})
}

// handleSongFileChunk forwards the frame verbatim to the requester named
// in the payload. The relay holds no transfer state: a requester that left
// the room or disconnected means the chunk is dropped on the floor.
func (ctl *SignalWSController) handleSongFileChunk(
	sid core.ConnectionID,
	conn core.SignalConnection,
	data []byte,
) {
	type chunkPayload struct {
		Type    string `json:"type"`
		Payload struct {
			Requester string `json:"requester"`
		} `json:"payload"`
	}
	var p chunkPayload
	if err := json.Unmarshal(data, &p); err != nil || p.Payload.Requester == "" {
		ctl.sendError(conn, "malformed message")
		return
	}
	room, ok := ctl.Orch.RoomOf(sid)
	if !ok {
		log.Debug().Str("module", "signal").Str("sid", string(sid)).Msg("chunk while unbound, dropped")
		return
	}
	target, ok := room.Member(core.ConnectionID(p.Payload.Requester))
	if !ok {
		log.Debug().Str("module", "signal").Str("requester", p.Payload.Requester).Msg("chunk requester gone, dropped")
		return
	}
	_ = target.Signal().TrySend(data)
}
