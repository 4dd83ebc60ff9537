package domain

import "testing"

func TestNewSongKeyNormalizes(t *testing.T) {
	t.Parallel()

	key := NewSongKey("  Bohemian Rhapsody ", "QUEEN")
	if key != "bohemian rhapsody|queen" {
		t.Fatalf("unexpected key %q", key)
	}

	a := Song{ID: 1, Title: "Hey Jude", Artist: "The Beatles"}
	b := Song{ID: 99, Title: "hey jude", Artist: " the beatles "}
	if a.Key() != b.Key() {
		t.Fatalf("keys should match independent of id and casing: %q vs %q", a.Key(), b.Key())
	}
}

func TestLibrarySets(t *testing.T) {
	t.Parallel()

	lib := Library{
		{ID: 1, Title: "One", Artist: "A"},
		{ID: 2, Title: "Two", Artist: "B"},
	}
	keys := lib.KeySet()
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
	if _, ok := keys[NewSongKey("one", "a")]; !ok {
		t.Fatal("missing key for song One")
	}
	ids := lib.IDSet()
	if _, ok := ids[2]; !ok {
		t.Fatal("missing id 2")
	}
}

func TestParseRoomCode(t *testing.T) {
	t.Parallel()

	code, err := ParseRoomCode("abc123")
	if err != nil {
		t.Fatalf("lowercase should fold: %v", err)
	}
	if code != "ABC123" {
		t.Fatalf("expected ABC123, got %q", code)
	}

	for _, bad := range []string{"", "ABC12", "ABC1234", "ABC12!", "ABC 12"} {
		if _, err := ParseRoomCode(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
