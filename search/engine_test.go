package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/typeahead/core"
	"github.com/poiesic/typeahead/match"
)

// recordingMonitor captures monitor callbacks for assertions.
type recordingMonitor struct {
	started      []string
	fallbacks    int
	fetches      int
	fetchErrs    []error
	matchCounts  []int
	finishCounts []int
}

var _ Monitor = (*recordingMonitor)(nil)

func (m *recordingMonitor) Start(query string)            { m.started = append(m.started, query) }
func (m *recordingMonitor) FallbackUsed(_ string, _ int)  { m.fallbacks++ }
func (m *recordingMonitor) AfterFetch(_ string, _ int)    { m.fetches++ }
func (m *recordingMonitor) FetchFailed(_ string, err error) {
	m.fetchErrs = append(m.fetchErrs, err)
}
func (m *recordingMonitor) AfterMatch(_ string, count int) { m.matchCounts = append(m.matchCounts, count) }
func (m *recordingMonitor) Finish(_ string, results []Result) {
	m.finishCounts = append(m.finishCounts, len(results))
}

func laptops() []core.Candidate {
	return []core.Candidate{
		{ID: "1", Label: "MacBook Pro", Popularity: 90},
		{ID: "2", Label: "MacBook Air", Popularity: 70},
	}
}

func resultIDs(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Candidate.ID
	}
	return out
}

func TestNewEngine(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		engine, err := NewEngine(DefaultConfig())
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})

	t.Run("nil fetcher", func(t *testing.T) {
		_, err := NewEngine(DefaultConfig(), WithFetcher(nil))
		assert.Equal(t, ErrNilFetcher, err)
	})

	t.Run("nil group function", func(t *testing.T) {
		_, err := NewEngine(DefaultConfig(), WithGroupFunc(nil))
		assert.Equal(t, ErrNilGroupFunc, err)
	})

	t.Run("nil monitor", func(t *testing.T) {
		_, err := NewEngine(DefaultConfig(), WithMonitor(nil))
		assert.Equal(t, ErrNilMonitor, err)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		engine, err := NewEngine(DefaultConfig(), WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})
}

func TestSearchHybridTypo(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FuzzyThreshold = 0.5
	engine, err := NewEngine(cfg, WithCandidates(laptops()))
	require.NoError(t, err)

	results := engine.Search(context.Background(), "macbok")
	require.Len(t, results, 2)
	// neither label starts with the misspelled query, so popularity decides
	assert.Equal(t, []string{"1", "2"}, resultIDs(results))
	// fuzzy-only match carries no highlight span
	assert.Nil(t, results[0].LabelSpan)
}

func TestSearchFallback(t *testing.T) {
	candidates := []core.Candidate{
		{ID: "rec", Label: "Keyboard", Recent: true},
		{ID: "p10", Label: "Cable", Popularity: 10},
		{ID: "p20", Label: "Mouse", Popularity: 20},
		{ID: "p30", Label: "Monitor", Popularity: 30},
	}

	t.Run("short query surfaces recent then popular", func(t *testing.T) {
		engine, err := NewEngine(DefaultConfig(), WithCandidates(candidates))
		require.NoError(t, err)

		results := engine.Search(context.Background(), "")
		assert.Equal(t, []string{"rec", "p30", "p20", "p10"}, resultIDs(results))
	})

	t.Run("fallback never calls the fetcher", func(t *testing.T) {
		fetched := false
		fetcher := FetchFunc(func(ctx context.Context, query string) ([]core.Candidate, error) {
			fetched = true
			return nil, nil
		})

		monitor := &recordingMonitor{}
		engine, err := NewEngine(DefaultConfig(),
			WithCandidates(candidates),
			WithFetcher(fetcher),
			WithMonitor(monitor),
		)
		require.NoError(t, err)

		engine.Search(context.Background(), "")
		assert.False(t, fetched)
		assert.Equal(t, 1, monitor.fallbacks)
	})
}

func TestSearchWithFetcher(t *testing.T) {
	t.Run("fetched candidates are re-filtered and re-ranked", func(t *testing.T) {
		fetcher := FetchFunc(func(ctx context.Context, query string) ([]core.Candidate, error) {
			return []core.Candidate{
				{ID: "junk", Label: "Toaster", Popularity: 100},
				{ID: "2", Label: "MacBook Air", Popularity: 70},
				{ID: "1", Label: "MacBook Pro", Popularity: 90},
			}, nil
		})

		engine, err := NewEngine(DefaultConfig(), WithFetcher(fetcher))
		require.NoError(t, err)

		results := engine.Search(context.Background(), "macbook")
		assert.Equal(t, []string{"1", "2"}, resultIDs(results))
	})

	t.Run("fetch failure degrades to empty results", func(t *testing.T) {
		fetchErr := errors.New("upstream down")
		fetcher := FetchFunc(func(ctx context.Context, query string) ([]core.Candidate, error) {
			return nil, fetchErr
		})

		monitor := &recordingMonitor{}
		engine, err := NewEngine(DefaultConfig(), WithFetcher(fetcher), WithMonitor(monitor))
		require.NoError(t, err)

		results := engine.Search(context.Background(), "macbook")
		assert.NotNil(t, results)
		assert.Empty(t, results)
		require.Len(t, monitor.fetchErrs, 1)
		assert.ErrorIs(t, monitor.fetchErrs[0], fetchErr)
	})
}

func TestSearchMaxResults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxResults = 2

	candidates := []core.Candidate{
		{ID: "1", Label: "Widget One", Popularity: 10},
		{ID: "2", Label: "Widget Two", Popularity: 50},
		{ID: "3", Label: "Widget Three", Popularity: 30},
		{ID: "4", Label: "Widget Four", Popularity: 40},
		{ID: "5", Label: "Widget Five", Popularity: 20},
	}
	engine, err := NewEngine(cfg, WithCandidates(candidates))
	require.NoError(t, err)

	results := engine.Search(context.Background(), "widget")
	assert.Equal(t, []string{"2", "4"}, resultIDs(results))
}

func TestSearchSkipsMalformedCandidates(t *testing.T) {
	candidates := []core.Candidate{
		{ID: "", Label: "No ID", Popularity: 99},
		{ID: "ok", Label: "Widget", Popularity: 1},
		{ID: "nolabel", Label: ""},
	}
	engine, err := NewEngine(DefaultConfig(), WithCandidates(candidates))
	require.NoError(t, err)

	results := engine.Search(context.Background(), "widget")
	assert.Equal(t, []string{"ok"}, resultIDs(results))
}

func TestSearchHighlightSpans(t *testing.T) {
	candidates := []core.Candidate{
		{ID: "1", Label: "MacBook Pro", Description: "The macbook for professionals"},
	}
	engine, err := NewEngine(DefaultConfig(), WithCandidates(candidates))
	require.NoError(t, err)

	results := engine.Search(context.Background(), "book")
	require.Len(t, results, 1)

	require.NotNil(t, results[0].LabelSpan)
	assert.Equal(t, Span{Start: 3, End: 7}, *results[0].LabelSpan)

	require.NotNil(t, results[0].DescriptionSpan)
	assert.Equal(t, Span{Start: 7, End: 11}, *results[0].DescriptionSpan)
}

func TestSearchGrouped(t *testing.T) {
	candidates := []core.Candidate{
		{ID: "1", Label: "MacBook Pro", Category: "Laptops", Popularity: 90},
		{ID: "2", Label: "Mac Mini", Category: "Desktops", Popularity: 60},
		{ID: "3", Label: "MacBook Air", Category: "Laptops", Popularity: 70},
		{ID: "4", Label: "Mac Pro", Popularity: 80},
	}

	t.Run("groups keep first-encounter order and rank order within", func(t *testing.T) {
		engine, err := NewEngine(DefaultConfig(),
			WithCandidates(candidates),
			WithGroupFunc(func(c core.Candidate) string { return c.Category }),
		)
		require.NoError(t, err)

		groups := engine.SearchGrouped(context.Background(), "mac")
		require.Len(t, groups, 3)

		assert.Equal(t, "Laptops", groups[0].Key)
		assert.Equal(t, []string{"1", "3"}, resultIDs(groups[0].Results))

		assert.Equal(t, DefaultGroupKey, groups[1].Key)
		assert.Equal(t, []string{"4"}, resultIDs(groups[1].Results))

		assert.Equal(t, "Desktops", groups[2].Key)
		assert.Equal(t, []string{"2"}, resultIDs(groups[2].Results))
	})

	t.Run("no group function yields one bucket", func(t *testing.T) {
		engine, err := NewEngine(DefaultConfig(), WithCandidates(candidates))
		require.NoError(t, err)

		groups := engine.SearchGrouped(context.Background(), "mac")
		require.Len(t, groups, 1)
		assert.Len(t, groups[0].Results, 4)
	})
}

func TestSearchExactCaseSensitive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = match.AlgorithmExact
	cfg.CaseSensitive = true

	engine, err := NewEngine(cfg, WithCandidates(laptops()))
	require.NoError(t, err)

	assert.Empty(t, engine.Search(context.Background(), "macbook"))
	assert.Len(t, engine.Search(context.Background(), "MacBook"), 2)
}
