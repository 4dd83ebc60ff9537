package signal

import "github.com/soundlink/relay/internal/core"

func (ctl *SignalWSController) handlePing(
	conn core.SignalConnection,
) {
	resp := struct {
		Type string `json:"type"`
	}{
		Type: "pong",
	}
	ctl.sendJSON(conn, resp)
}
