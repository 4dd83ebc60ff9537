package app

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/soundlink/relay/internal/core"
)

type fakeConn struct{}

func (fakeConn) TrySend(core.Frame) error { return nil }
func (fakeConn) Close()                   {}

func newSession() core.MemberSession {
	return core.NewMemberSession(fakeConn{})
}

var codeRe = regexp.MustCompile(`^[A-Z0-9]{6}$`)

func TestHostRoomCodes(t *testing.T) {
	t.Parallel()

	m := NewRoomManager()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		sid := core.ConnectionID(fmt.Sprintf("c%d", i))
		room := m.HostRoom(sid, newSession(), "")
		code := string(room.Code())
		if !codeRe.MatchString(code) {
			t.Fatalf("bad code format %q", code)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q among live rooms", code)
		}
		seen[code] = true
	}
	if len(m.List()) != 50 {
		t.Fatalf("expected 50 live rooms, got %d", len(m.List()))
	}
}

func TestRoomRemovedWhenEmptied(t *testing.T) {
	t.Parallel()

	m := NewRoomManager()
	room := m.HostRoom("a", newSession(), "")
	code := room.Code()

	if _, ok := m.GetRoom(code); !ok {
		t.Fatal("room must be present while occupied")
	}
	m.LeaveRoom(code, "a")
	if _, ok := m.GetRoom(code); ok {
		t.Fatal("empty room must be removed immediately")
	}
	if len(m.List()) != 0 {
		t.Fatalf("registry should be empty, has %d rooms", len(m.List()))
	}

	// Leaving again is harmless.
	m.LeaveRoom(code, "a")
}

func TestJoinUnknownRoomKeepsState(t *testing.T) {
	t.Parallel()

	m := NewRoomManager()
	home := m.HostRoom("a", newSession(), "")

	if _, _, ok := m.JoinRoom("NOPE42", "a", newSession(), home.Code()); ok {
		t.Fatal("join of unknown room must fail")
	}
	// The failed join must not have torn down the previous membership.
	if home.MemberCount() != 1 {
		t.Fatalf("previous room disturbed: %d members", home.MemberCount())
	}
}

func TestJoinMovesBetweenRooms(t *testing.T) {
	t.Parallel()

	m := NewRoomManager()
	first := m.HostRoom("a", newSession(), "")
	second := m.HostRoom("b", newSession(), "")

	room, peers, ok := m.JoinRoom(second.Code(), "a", newSession(), first.Code())
	if !ok {
		t.Fatal("join failed")
	}
	if room.MemberCount() != 2 {
		t.Fatalf("target room: got %d members, want 2", room.MemberCount())
	}
	if len(peers) != 1 || peers[0].ID != "b" {
		t.Fatalf("pre-join peers: got %v, want just b", peers)
	}
	// The vacated room emptied and must be gone.
	if _, ok := m.GetRoom(first.Code()); ok {
		t.Fatal("vacated empty room still registered")
	}
}

func TestSoleMemberRejoinKeepsRoomRegistered(t *testing.T) {
	t.Parallel()

	m := NewRoomManager()
	room := m.HostRoom("a", newSession(), "")
	code := room.Code()

	rejoined, peers, ok := m.JoinRoom(code, "a", newSession(), code)
	if !ok {
		t.Fatal("re-join of own room failed")
	}
	if len(peers) != 0 {
		t.Fatalf("sole member saw phantom peers: %v", peers)
	}
	if rejoined.MemberCount() != 1 {
		t.Fatalf("got %d members, want 1", rejoined.MemberCount())
	}
	// The occupied room must still be reachable through the table.
	if got, ok := m.GetRoom(code); !ok || got.MemberCount() != 1 {
		t.Fatalf("room %s has a member but vanished from the registry", code)
	}
	if len(m.List()) != 1 {
		t.Fatalf("expected 1 live room, got %d", len(m.List()))
	}
}
