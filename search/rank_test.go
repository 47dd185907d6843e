package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/typeahead/core"
)

func TestRank(t *testing.T) {
	t.Run("prefix matches come first", func(t *testing.T) {
		in := []core.Candidate{
			{ID: "1", Label: "Pro Display", Popularity: 99},
			{ID: "2", Label: "MacBook Air", Popularity: 70},
		}
		out := Rank(in, "mac")
		assert.Equal(t, "2", out[0].ID)
		assert.Equal(t, "1", out[1].ID)
	})

	t.Run("popularity breaks prefix ties", func(t *testing.T) {
		in := []core.Candidate{
			{ID: "air", Label: "MacBook Air", Popularity: 70},
			{ID: "pro", Label: "MacBook Pro", Popularity: 90},
		}
		out := Rank(in, "macbook")
		assert.Equal(t, "pro", out[0].ID)
		assert.Equal(t, "air", out[1].ID)
	})

	t.Run("stable for equal keys", func(t *testing.T) {
		in := []core.Candidate{
			{ID: "a", Label: "Widget A", Popularity: 10},
			{ID: "b", Label: "Widget B", Popularity: 10},
			{ID: "c", Label: "Widget C", Popularity: 10},
		}
		out := Rank(in, "widget")
		assert.Equal(t, []string{"a", "b", "c"}, ids(out))
	})

	t.Run("idempotent", func(t *testing.T) {
		in := []core.Candidate{
			{ID: "1", Label: "Keyboard", Popularity: 20},
			{ID: "2", Label: "Mouse", Popularity: 20},
			{ID: "3", Label: "Monitor", Popularity: 50},
		}
		once := Rank(in, "m")
		twice := Rank(once, "m")
		assert.Equal(t, ids(once), ids(twice))
	})

	t.Run("absent popularity ranks as zero", func(t *testing.T) {
		in := []core.Candidate{
			{ID: "zero", Label: "Zeta"},
			{ID: "ten", Label: "Zed", Popularity: 10},
		}
		out := Rank(in, "ze")
		assert.Equal(t, []string{"ten", "zero"}, ids(out))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		in := []core.Candidate{
			{ID: "1", Label: "B", Popularity: 1},
			{ID: "2", Label: "A", Popularity: 2},
		}
		Rank(in, "a")
		assert.Equal(t, "1", in[0].ID)
	})
}

func ids(candidates []core.Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.ID
	}
	return out
}
