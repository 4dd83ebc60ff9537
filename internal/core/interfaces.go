package core

import "github.com/soundlink/relay/internal/domain"

// Frame is a raw encoded message payload.
type Frame []byte

// ConnectionID identifies one transport connection for its lifetime.
type ConnectionID string

// SignalConnection abstracts the messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// MemberSession binds a connection's shared state and its transport
// endpoint. This is what a room stores and fans out to. The library
// snapshot is the only mutable state and is safe for concurrent use.
type MemberSession interface {
	Signal() SignalConnection
	Library() domain.Library
	SetLibrary(domain.Library)
	HasSong(domain.SongKey) bool
}

// PublishResult reports delivery stats to the caller. Slow receivers are
// dropped for that frame only; the relay keeps no backpressure state.
type PublishResult struct {
	SentTo  int
	Dropped int
}

// PeerRef pairs a member's id with its session for routing decisions.
type PeerRef struct {
	ID      ConnectionID
	Session MemberSession
}

// RoomService is the core-facing API of a room.
// It owns the membership set but never touches transport resources.
type RoomService interface {
	Code() domain.RoomCode
	MemberCount() int
	Member(ConnectionID) (MemberSession, bool)
	Members() []PeerRef
	Peers(exclude ConnectionID) []PeerRef

	AddMember(ConnectionID, MemberSession)
	RemoveMember(ConnectionID)
	Broadcast(from ConnectionID, data Frame) PublishResult
}

type RoomInfo struct {
	Code        domain.RoomCode `json:"code"`
	MemberCount int             `json:"member_count"`
}
