package signal

import (
	"encoding/json"
	"math/rand/v2"

	"github.com/rs/zerolog/log"

	"github.com/soundlink/relay/internal/app"
	"github.com/soundlink/relay/internal/core"
	"github.com/soundlink/relay/internal/domain"
)

// handleShareQueue relays the queue to the rest of the room without
// interpreting it. Unbound senders have nobody to relay to.
func (ctl *SignalWSController) handleShareQueue(
	sid core.ConnectionID,
	conn core.SignalConnection,
	data []byte,
) {
	type queuePayload struct {
		Type  string          `json:"type"`
		Queue json.RawMessage `json:"queue"`
	}
	var p queuePayload
	if err := json.Unmarshal(data, &p); err != nil || p.Queue == nil {
		ctl.sendError(conn, "malformed message")
		return
	}
	room, ok := ctl.Orch.RoomOf(sid)
	if !ok {
		log.Debug().Str("module", "signal").Str("sid", string(sid)).Msg("shareQueue while unbound")
		return
	}
	ctl.broadcast(room, sid, struct {
		Type  string          `json:"type"`
		Queue json.RawMessage `json:"queue"`
	}{"queueUpdate", p.Queue})
}

func (ctl *SignalWSController) handleSharePlaylist(
	sid core.ConnectionID,
	conn core.SignalConnection,
	data []byte,
) {
	type playlistPayload struct {
		Type     string          `json:"type"`
		Playlist json.RawMessage `json:"playlist"`
	}
	var p playlistPayload
	if err := json.Unmarshal(data, &p); err != nil || p.Playlist == nil {
		ctl.sendError(conn, "malformed message")
		return
	}
	room, ok := ctl.Orch.RoomOf(sid)
	if !ok {
		log.Debug().Str("module", "signal").Str("sid", string(sid)).Msg("sharePlaylist while unbound")
		return
	}
	ctl.broadcast(room, sid, struct {
		Type     string          `json:"type"`
		Playlist json.RawMessage `json:"playlist"`
	}{"playlistUpdate", p.Playlist})
}

// handleShareLibrary replaces the sender's snapshot whether or not it is
// in a room; the fan-out only happens when it is.
func (ctl *SignalWSController) handleShareLibrary(
	sid core.ConnectionID,
	conn core.SignalConnection,
	data []byte,
) {
	type libraryPayload struct {
		Type    string          `json:"type"`
		Library *domain.Library `json:"library"`
	}
	var p libraryPayload
	if err := json.Unmarshal(data, &p); err != nil || p.Library == nil {
		ctl.sendError(conn, "malformed message")
		return
	}
	sess, ok := ctl.Orch.Registry.GetSession(sid)
	if !ok {
		ctl.sendError(conn, "unknown session")
		return
	}
	sess.SetLibrary(*p.Library)
	log.Info().Str("module", "signal").Str("sid", string(sid)).Int("songs", len(*p.Library)).Msg("library shared")

	room, ok := ctl.Orch.RoomOf(sid)
	if !ok {
		return
	}
	ctl.broadcast(room, sid, struct {
		Type    string         `json:"type"`
		Library domain.Library `json:"library"`
	}{"libraryUpdate", *p.Library})
}

func (ctl *SignalWSController) handleCompareLibraries(
	sid core.ConnectionID,
	conn core.SignalConnection,
	data []byte,
) {
	type comparePayload struct {
		Type    string          `json:"type"`
		Library *domain.Library `json:"library"`
	}
	var p comparePayload
	if err := json.Unmarshal(data, &p); err != nil || p.Library == nil {
		ctl.sendError(conn, "malformed message")
		return
	}
	room, ok := ctl.Orch.RoomOf(sid)
	if !ok {
		ctl.sendError(conn, "not in a room")
		return
	}
	peers := room.Peers(sid)
	if len(peers) == 0 {
		ctl.sendError(conn, "only one in room")
		return
	}
	// Arbitrary peer when the room holds more than two members; the
	// contract deliberately leaves the choice unspecified.
	remote := peers[0].Session.Library()
	if len(remote) == 0 {
		ctl.sendError(conn, "no shared library found")
		return
	}
	res := app.CompareLibraries(*p.Library, remote)
	ctl.sendJSON(conn, struct {
		Type    string               `json:"type"`
		Results app.ComparisonResult `json:"results"`
	}{"comparisonResult", res})
}

// handleSyncCommon intersects every member's shared library by id,
// shuffles the survivors and pushes them as the new queue to the whole
// room, sender included.
func (ctl *SignalWSController) handleSyncCommon(
	sid core.ConnectionID,
	conn core.SignalConnection,
) {
	room, ok := ctl.Orch.RoomOf(sid)
	if !ok {
		ctl.sendError(conn, "not in a room")
		return
	}
	members := room.Members()
	libs := make([]domain.Library, 0, len(members))
	for _, m := range members {
		libs = append(libs, m.Session.Library())
	}
	ids := app.CommonIDs(libs)
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	log.Info().Str("module", "signal").Str("room", string(room.Code())).Int("common", len(ids)).Msg("sync common queue")
	ctl.broadcast(room, "", struct {
		Type  string  `json:"type"`
		Queue []int64 `json:"queue"`
	}{"queueUpdate", ids})
}
