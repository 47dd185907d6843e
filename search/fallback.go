package search

import (
	"sort"

	"github.com/poiesic/typeahead/core"
)

// Fallback produces the result set for queries below the minimum length,
// including the empty initial query: the first recent candidates, then the
// first trending ones, then the most popular, deduplicated by ID keeping
// the first occurrence and truncated to cfg.MaxResults. The recent,
// trending, popular order is part of the contract.
func Fallback(candidates []core.Candidate, cfg Config) []core.Candidate {
	cfg = cfg.withDefaults()

	merged := make([]core.Candidate, 0, recentSliceSize+trendingSliceSize+popularSliceSize)

	if cfg.ShowRecent {
		merged = append(merged, takeFlagged(candidates, recentSliceSize, func(c core.Candidate) bool { return c.Recent })...)
	}
	if cfg.ShowTrending {
		merged = append(merged, takeFlagged(candidates, trendingSliceSize, func(c core.Candidate) bool { return c.Trending })...)
	}

	popular := make([]core.Candidate, len(candidates))
	copy(popular, candidates)
	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].Popularity > popular[j].Popularity
	})
	if len(popular) > popularSliceSize {
		popular = popular[:popularSliceSize]
	}
	merged = append(merged, popular...)

	deduped := dedupeByID(merged)
	if len(deduped) > cfg.MaxResults {
		deduped = deduped[:cfg.MaxResults]
	}
	return deduped
}

// takeFlagged returns the first limit candidates satisfying keep, in input
// order.
func takeFlagged(candidates []core.Candidate, limit int, keep func(core.Candidate) bool) []core.Candidate {
	out := make([]core.Candidate, 0, limit)
	for _, c := range candidates {
		if !keep(c) {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out
}

// dedupeByID drops candidates whose ID was already seen, keeping the
// first occurrence.
func dedupeByID(candidates []core.Candidate) []core.Candidate {
	seen := make(map[string]bool, len(candidates))
	out := make([]core.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}
