package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/soundlink/relay/internal/core"
	"github.com/soundlink/relay/internal/domain"
)

func (ctl *SignalWSController) handleHost(
	sid core.ConnectionID,
	conn core.SignalConnection,
) {
	room, ok := ctl.Orch.Host(sid)
	if !ok {
		log.Error().Str("module", "signal").Str("sid", string(sid)).Msg("host without session")
		ctl.sendError(conn, "unknown session")
		return
	}
	resp := struct {
		Type     string          `json:"type"`
		RoomCode domain.RoomCode `json:"roomCode"`
	}{
		Type:     "hosted",
		RoomCode: room.Code(),
	}
	ctl.sendJSON(conn, resp)
}

func (ctl *SignalWSController) handleJoin(
	sid core.ConnectionID,
	conn core.SignalConnection,
	data []byte,
) {
	type joinPayload struct {
		Type     string `json:"type"`
		RoomCode string `json:"roomCode"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		ctl.sendError(conn, "malformed message")
		return
	}
	code, err := domain.ParseRoomCode(p.RoomCode)
	if err != nil {
		ctl.sendError(conn, "malformed room code")
		return
	}
	room, peers, ok := ctl.Orch.Join(sid, code)
	if !ok {
		log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room", p.RoomCode).Msg("join unknown room")
		ctl.sendError(conn, "room not found")
		return
	}

	// peers was snapshotted before the membership move, so only the
	// members who were already there are asked to re-share; the newcomer
	// never receives a request for its own library.
	for _, peer := range peers {
		ctl.sendJSON(peer.Session.Signal(), map[string]any{"type": "requestLibraryShare"})
	}
	resp := struct {
		Type     string          `json:"type"`
		RoomCode domain.RoomCode `json:"roomCode"`
	}{
		Type:     "joined",
		RoomCode: room.Code(),
	}
	ctl.sendJSON(conn, resp)
}

// handleLeave detaches the connection from its room; the socket stays up.
// Leaving while unbound is a no-op and still acknowledged.
func (ctl *SignalWSController) handleLeave(
	sid core.ConnectionID,
	conn core.SignalConnection,
) {
	log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("leave")
	ctl.Orch.Leave(sid)
	ctl.sendJSON(conn, map[string]any{
		"type": "left",
	})
}
