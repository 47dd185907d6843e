package search

import (
	"time"

	"github.com/poiesic/typeahead/match"
)

// Documented configuration defaults.
const (
	DefaultFuzzyThreshold = 0.5
	DefaultMinQueryLength = 1
	DefaultMaxResults     = 10
	DefaultDebounce       = 300 * time.Millisecond
)

// Searchable field names accepted in Config.FilterBy.
const (
	FieldLabel       = "label"
	FieldValue       = "value"
	FieldCategory    = "category"
	FieldDescription = "description"
)

// Fallback slice sizes: the first 3 recent, the first 3 trending, and the
// 4 most popular candidates are merged, in that order.
const (
	recentSliceSize   = 3
	trendingSliceSize = 3
	popularSliceSize  = 4
)

// DefaultFilterBy returns the default searchable field list.
func DefaultFilterBy() []string {
	return []string{FieldLabel, FieldValue, FieldDescription}
}

// Config controls engine behavior. It is a value object; the engine
// normalizes a copy at construction and never mutates it afterwards.
type Config struct {
	// Algorithm selects the match strategy. Unrecognized or empty values
	// fall back to hybrid.
	Algorithm match.Algorithm

	// FuzzyThreshold is the minimum similarity (1 - normalized edit
	// distance) required for a fuzzy match. Clamped to [0, 1].
	FuzzyThreshold float64

	// MinQueryLength is the query rune count below which the fallback
	// selector answers instead of the match strategy.
	MinQueryLength int

	// MaxResults caps the final result list. Non-positive values take the
	// default.
	MaxResults int

	// Debounce is the quiet period the widget waits after a keystroke
	// before searching.
	Debounce time.Duration

	// CaseSensitive and AccentSensitive affect exact-match comparison.
	// Accents are folded only when AccentSensitive is false.
	CaseSensitive   bool
	AccentSensitive bool

	// FilterBy names the candidate fields concatenated into the searchable
	// text. Empty means DefaultFilterBy. Unknown names are ignored.
	FilterBy []string

	// ShowRecent and ShowTrending enable the corresponding fallback slices.
	ShowRecent   bool
	ShowTrending bool
}

// DefaultConfig returns the documented defaults: hybrid matching, fuzzy
// threshold 0.5, minimum query length 1, 10 results, 300ms debounce,
// case- and accent-insensitive, with recent and trending fallback slices
// enabled.
func DefaultConfig() Config {
	return Config{
		Algorithm:      match.AlgorithmHybrid,
		FuzzyThreshold: DefaultFuzzyThreshold,
		MinQueryLength: DefaultMinQueryLength,
		MaxResults:     DefaultMaxResults,
		Debounce:       DefaultDebounce,
		FilterBy:       DefaultFilterBy(),
		ShowRecent:     true,
		ShowTrending:   true,
	}
}

// withDefaults fills zero values with documented defaults and clamps
// out-of-range fields to the nearest valid bound.
func (c Config) withDefaults() Config {
	if c.Algorithm == "" {
		c.Algorithm = match.AlgorithmHybrid
	} else {
		c.Algorithm = match.ParseAlgorithm(string(c.Algorithm))
	}
	if c.FuzzyThreshold < 0 {
		c.FuzzyThreshold = 0
	}
	if c.FuzzyThreshold > 1 {
		c.FuzzyThreshold = 1
	}
	if c.MinQueryLength < 0 {
		c.MinQueryLength = 0
	}
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.Debounce < 0 {
		c.Debounce = 0
	}
	if len(c.FilterBy) == 0 {
		c.FilterBy = DefaultFilterBy()
	}
	return c
}
