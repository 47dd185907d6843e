package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/typeahead/match"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, match.AlgorithmHybrid, cfg.Algorithm)
	assert.Equal(t, 0.5, cfg.FuzzyThreshold)
	assert.Equal(t, 1, cfg.MinQueryLength)
	assert.Equal(t, 10, cfg.MaxResults)
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce)
	assert.False(t, cfg.CaseSensitive)
	assert.False(t, cfg.AccentSensitive)
	assert.Equal(t, []string{FieldLabel, FieldValue, FieldDescription}, cfg.FilterBy)
	assert.True(t, cfg.ShowRecent)
	assert.True(t, cfg.ShowTrending)
}

func TestConfigWithDefaults(t *testing.T) {
	t.Run("zero values take defaults", func(t *testing.T) {
		cfg := Config{}.withDefaults()
		assert.Equal(t, match.AlgorithmHybrid, cfg.Algorithm)
		assert.Equal(t, DefaultMaxResults, cfg.MaxResults)
		assert.Equal(t, DefaultFilterBy(), cfg.FilterBy)
	})

	t.Run("out-of-range values are clamped", func(t *testing.T) {
		cfg := Config{
			FuzzyThreshold: 1.7,
			MinQueryLength: -2,
			MaxResults:     -5,
			Debounce:       -time.Second,
		}.withDefaults()
		assert.Equal(t, 1.0, cfg.FuzzyThreshold)
		assert.Equal(t, 0, cfg.MinQueryLength)
		assert.Equal(t, DefaultMaxResults, cfg.MaxResults)
		assert.Equal(t, time.Duration(0), cfg.Debounce)

		cfg = Config{FuzzyThreshold: -0.3}.withDefaults()
		assert.Equal(t, 0.0, cfg.FuzzyThreshold)
	})

	t.Run("unrecognized algorithm becomes hybrid", func(t *testing.T) {
		cfg := Config{Algorithm: "vector"}.withDefaults()
		assert.Equal(t, match.AlgorithmHybrid, cfg.Algorithm)
	})
}
