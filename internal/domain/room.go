package domain

import "errors"

const (
	RoomCodeLen      = 6
	RoomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var ErrBadRoomCode = errors.New("malformed room code")

// RoomCode is the short identifier clients exchange out of band.
type RoomCode string

// ParseRoomCode validates client input. Lowercase input is accepted and
// folded, since codes are typically read aloud or typed by hand.
func ParseRoomCode(raw string) (RoomCode, error) {
	if len(raw) != RoomCodeLen {
		return "", ErrBadRoomCode
	}
	code := make([]byte, 0, RoomCodeLen)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return "", ErrBadRoomCode
		}
		code = append(code, c)
	}
	return RoomCode(code), nil
}
