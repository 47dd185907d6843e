package search

import (
	"sort"
	"strings"

	"github.com/poiesic/typeahead/core"
)

// Rank orders matched candidates for display: candidates whose label
// starts with the query (case-insensitively) come first, then descending
// popularity. The sort is stable, so equal-score candidates keep their
// relative input order between keystrokes.
func Rank(matched []core.Candidate, query string) []core.Candidate {
	ranked := make([]core.Candidate, len(matched))
	copy(ranked, matched)

	q := strings.ToLower(query)
	sort.SliceStable(ranked, func(i, j int) bool {
		pi := strings.HasPrefix(strings.ToLower(ranked[i].Label), q)
		pj := strings.HasPrefix(strings.ToLower(ranked[j].Label), q)
		if pi != pj {
			return pi
		}
		return ranked[i].Popularity > ranked[j].Popularity
	})

	return ranked
}
