package app

import (
	"testing"

	"github.com/soundlink/relay/internal/domain"
)

func lib(ids ...int64) domain.Library {
	out := make(domain.Library, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Song{ID: id, Title: "t", Artist: "a"})
	}
	return out
}

func songIDs(l domain.Library) []int64 {
	out := make([]int64, 0, len(l))
	for _, s := range l {
		out = append(out, s.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCompareLibraries(t *testing.T) {
	t.Parallel()

	res := CompareLibraries(lib(1, 2, 3), lib(2, 3, 4))

	if got := songIDs(res.CommonSongs); !equalIDs(got, []int64{2, 3}) {
		t.Fatalf("common: got %v, want [2 3]", got)
	}
	if got := songIDs(res.LocalOnlySongs); !equalIDs(got, []int64{1}) {
		t.Fatalf("localOnly: got %v, want [1]", got)
	}
	if got := songIDs(res.RemoteOnlySongs); !equalIDs(got, []int64{4}) {
		t.Fatalf("remoteOnly: got %v, want [4]", got)
	}
	if res.LocalPercentage != 67 {
		t.Fatalf("localPercentage: got %d, want 67", res.LocalPercentage)
	}
	if res.RemotePercentage != 67 {
		t.Fatalf("remotePercentage: got %d, want 67", res.RemotePercentage)
	}
}

func TestCompareLibrariesEmptySides(t *testing.T) {
	t.Parallel()

	res := CompareLibraries(nil, lib(1))
	if res.LocalPercentage != 0 || res.RemotePercentage != 0 {
		t.Fatalf("empty local must not divide by zero: %+v", res)
	}
	if len(res.RemoteOnlySongs) != 1 {
		t.Fatalf("remoteOnly: got %d, want 1", len(res.RemoteOnlySongs))
	}

	res = CompareLibraries(lib(1), nil)
	if res.RemotePercentage != 0 {
		t.Fatalf("empty remote must report 0%%: %+v", res)
	}
}

func TestCommonIDs(t *testing.T) {
	t.Parallel()

	ids := CommonIDs([]domain.Library{lib(1, 2, 3), lib(2, 3, 4), lib(3, 4, 5)})
	if !equalIDs(ids, []int64{3}) {
		t.Fatalf("got %v, want [3]", ids)
	}

	if got := CommonIDs(nil); got != nil {
		t.Fatalf("no libraries should yield nil, got %v", got)
	}

	// A member that shared nothing empties the intersection.
	ids = CommonIDs([]domain.Library{lib(1, 2), nil})
	if len(ids) != 0 {
		t.Fatalf("got %v, want empty", ids)
	}
}
