package search

import "github.com/poiesic/typeahead/core"

// GroupFunc maps a candidate to a display group key. It must be pure.
type GroupFunc func(core.Candidate) string

// DefaultGroupKey is used when a grouping function returns an empty key.
const DefaultGroupKey = "Other"

// Group is an ordered partition of the final result list. Groups appear
// in first-encountered order; results within a group keep rank order.
type Group struct {
	Key     string
	Results []Result
}

func groupResults(results []Result, fn GroupFunc) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)

	for _, r := range results {
		key := fn(r.Candidate)
		if key == "" {
			key = DefaultGroupKey
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Results = append(groups[i].Results, r)
	}

	return groups
}
