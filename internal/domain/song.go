// Package domain contains entity without logic, just meta-data
package domain

import "strings"

// Song is one record of a client's shared library. Clients own the ids;
// the relay never mints or rewrites them.
type Song struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Album  string `json:"album,omitempty"`
}

// Library is the last full snapshot a client shared, in client order.
type Library []Song

// SongKey identifies a song by title+artist instead of by whose database
// row it came from, so availability survives mismatched numeric ids.
type SongKey string

func NewSongKey(title, artist string) SongKey {
	return SongKey(normalize(title) + "|" + normalize(artist))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s Song) Key() SongKey {
	return NewSongKey(s.Title, s.Artist)
}

// KeySet derives the availability lookup set for a library.
func (l Library) KeySet() map[SongKey]struct{} {
	out := make(map[SongKey]struct{}, len(l))
	for _, s := range l {
		out[s.Key()] = struct{}{}
	}
	return out
}

// IDSet derives the id lookup set for comparison.
func (l Library) IDSet() map[int64]struct{} {
	out := make(map[int64]struct{}, len(l))
	for _, s := range l {
		out[s.ID] = struct{}{}
	}
	return out
}
