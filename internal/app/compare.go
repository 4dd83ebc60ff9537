package app

import (
	"math"

	"github.com/soundlink/relay/internal/domain"
)

// ComparisonResult is the pairwise diff of two shared libraries, split the
// way clients render it: what both sides have, what only the requester has,
// what only the peer has.
type ComparisonResult struct {
	CommonSongs      domain.Library `json:"commonSongs"`
	LocalOnlySongs   domain.Library `json:"localOnlySongs"`
	RemoteOnlySongs  domain.Library `json:"remoteOnlySongs"`
	LocalPercentage  int            `json:"localPercentage"`
	RemotePercentage int            `json:"remotePercentage"`
}

// CompareLibraries diffs by song id. Entries keep the order of the library
// they came from.
func CompareLibraries(local, remote domain.Library) ComparisonResult {
	localIDs := local.IDSet()
	remoteIDs := remote.IDSet()

	res := ComparisonResult{
		CommonSongs:     domain.Library{},
		LocalOnlySongs:  domain.Library{},
		RemoteOnlySongs: domain.Library{},
	}
	for _, s := range local {
		if _, ok := remoteIDs[s.ID]; ok {
			res.CommonSongs = append(res.CommonSongs, s)
		} else {
			res.LocalOnlySongs = append(res.LocalOnlySongs, s)
		}
	}
	for _, s := range remote {
		if _, ok := localIDs[s.ID]; !ok {
			res.RemoteOnlySongs = append(res.RemoteOnlySongs, s)
		}
	}
	res.LocalPercentage = matchPercentage(len(res.CommonSongs), len(local))
	res.RemotePercentage = matchPercentage(len(res.CommonSongs), len(remote))
	return res
}

func matchPercentage(common, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(common) / float64(total)))
}

// CommonIDs is the N-way id intersection across libraries, in the order of
// the first one. A member that shared nothing empties the result.
func CommonIDs(libraries []domain.Library) []int64 {
	if len(libraries) == 0 {
		return nil
	}
	candidates := libraries[0]
	for _, lib := range libraries[1:] {
		ids := lib.IDSet()
		kept := candidates[:0:0]
		for _, s := range candidates {
			if _, ok := ids[s.ID]; ok {
				kept = append(kept, s)
			}
		}
		candidates = kept
	}
	out := make([]int64, 0, len(candidates))
	for _, s := range candidates {
		out = append(out, s.ID)
	}
	return out
}
