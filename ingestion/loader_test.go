package ingestion

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/typeahead/core"
	badgerstore "github.com/poiesic/typeahead/storage/badger"
)

func newTestLoader(t *testing.T, opts ...Option) *Loader {
	t.Helper()
	catalog, backend, err := badgerstore.NewMemoryCatalog()
	require.NoError(t, err)
	t.Cleanup(func() {
		catalog.Close()
		backend.Close()
	})

	loader, err := NewLoader(catalog, opts...)
	require.NoError(t, err)
	t.Cleanup(loader.Release)
	return loader
}

func TestNewLoader(t *testing.T) {
	t.Run("nil catalog", func(t *testing.T) {
		_, err := NewLoader(nil)
		assert.Equal(t, ErrCatalogRequired, err)
	})

	t.Run("pool and batch sizes are floored at one", func(t *testing.T) {
		loader := newTestLoader(t, WithPoolSize(0), WithBatchSize(-3))
		assert.Equal(t, 1, loader.batchSize)
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("loads valid candidates across batches", func(t *testing.T) {
		loader := newTestLoader(t, WithBatchSize(3))

		candidates := make([]core.Candidate, 10)
		for i := range candidates {
			candidates[i] = core.Candidate{
				ID:    fmt.Sprintf("c%d", i),
				Label: fmt.Sprintf("Candidate %d", i),
			}
		}

		stats, err := loader.Load(ctx, candidates)
		require.NoError(t, err)
		assert.Equal(t, 10, stats.Loaded)
		assert.Equal(t, 0, stats.Skipped)

		all, err := loader.catalog.AllCandidates(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 10)
	})

	t.Run("normalizes ids and popularity", func(t *testing.T) {
		loader := newTestLoader(t)

		stats, err := loader.Load(ctx, []core.Candidate{
			{Label: "Keyboard", Value: "kbd", Popularity: -5},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Loaded)

		all, err := loader.catalog.AllCandidates(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Len(t, all[0].ID, 16)
		assert.Equal(t, 0.0, all[0].Popularity)
	})

	t.Run("skips malformed candidates without failing", func(t *testing.T) {
		loader := newTestLoader(t)

		stats, err := loader.Load(ctx, []core.Candidate{
			{ID: "ok", Label: "Fine"},
			{ID: "bad"}, // no label
			{ID: "ok2", Label: "Also fine"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Loaded)
		assert.Equal(t, 1, stats.Skipped)
	})

	t.Run("identical content loads idempotently", func(t *testing.T) {
		loader := newTestLoader(t)

		_, err := loader.Load(ctx, []core.Candidate{{Label: "Mouse", Value: "mouse"}})
		require.NoError(t, err)
		_, err = loader.Load(ctx, []core.Candidate{{Label: "Mouse", Value: "mouse"}})
		require.NoError(t, err)

		all, err := loader.catalog.AllCandidates(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestLoadJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes and loads", func(t *testing.T) {
		loader := newTestLoader(t)

		input := `[
			{"id": "mbp", "label": "MacBook Pro", "category": "Laptops", "popularity": 90},
			{"label": "MacBook Air", "value": "macbook-air", "trending": true}
		]`

		stats, err := loader.LoadJSON(ctx, strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Loaded)

		got, err := loader.catalog.GetCandidate(ctx, "mbp")
		require.NoError(t, err)
		assert.Equal(t, "Laptops", got.Category)
		assert.Equal(t, 90.0, got.Popularity)
	})

	t.Run("malformed json fails", func(t *testing.T) {
		loader := newTestLoader(t)
		_, err := loader.LoadJSON(ctx, strings.NewReader(`{"not": "an array"`))
		assert.Error(t, err)
	})
}
