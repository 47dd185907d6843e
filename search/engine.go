package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/poiesic/typeahead/core"
	"github.com/poiesic/typeahead/match"
)

// Fetcher retrieves candidates for a query from a remote source. The
// engine re-filters and re-ranks whatever comes back, so a source that
// pre-filters and one that returns its whole corpus behave the same.
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]core.Candidate, error)
}

// FetchFunc adapts a function to the Fetcher interface.
type FetchFunc func(ctx context.Context, query string) ([]core.Candidate, error)

// Fetch calls f.
func (f FetchFunc) Fetch(ctx context.Context, query string) ([]core.Candidate, error) {
	return f(ctx, query)
}

// Engine runs typeahead queries over local candidates or a Fetcher.
type Engine struct {
	mu         sync.RWMutex
	cfg        Config
	strategy   match.Strategy
	candidates []core.Candidate
	fetcher    Fetcher
	group      GroupFunc
	monitor    Monitor
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithCandidates sets the local candidate set. The slice is copied; the
// engine never mutates candidates.
func WithCandidates(candidates []core.Candidate) Option {
	return func(e *Engine) error {
		e.setCandidates(candidates)
		return nil
	}
}

// WithFetcher sets the asynchronous candidate source. When a fetcher is
// present it answers every query at or above the minimum length; the
// local set still serves the fallback path.
func WithFetcher(fetcher Fetcher) Option {
	return func(e *Engine) error {
		if fetcher == nil {
			return ErrNilFetcher
		}
		e.fetcher = fetcher
		return nil
	}
}

// WithGroupFunc sets the grouping function used by SearchGrouped.
func WithGroupFunc(fn GroupFunc) Option {
	return func(e *Engine) error {
		if fn == nil {
			return ErrNilGroupFunc
		}
		e.group = fn
		return nil
	}
}

// WithMonitor sets the search monitor.
func WithMonitor(monitor Monitor) Option {
	return func(e *Engine) error {
		if monitor == nil {
			return ErrNilMonitor
		}
		e.monitor = monitor
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates an engine. Zero-valued config fields take documented
// defaults; out-of-range values are clamped rather than rejected.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	cfg = cfg.withDefaults()

	e := &Engine{
		cfg: cfg,
		strategy: match.New(cfg.Algorithm, match.Options{
			Threshold:       cfg.FuzzyThreshold,
			CaseSensitive:   cfg.CaseSensitive,
			AccentSensitive: cfg.AccentSensitive,
		}),
		monitor: &noopMonitor{},
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Config returns the normalized configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetCandidates replaces the local candidate set.
func (e *Engine) SetCandidates(candidates []core.Candidate) {
	e.setCandidates(candidates)
}

func (e *Engine) setCandidates(candidates []core.Candidate) {
	copied := make([]core.Candidate, len(candidates))
	copy(copied, candidates)
	e.mu.Lock()
	e.candidates = copied
	e.mu.Unlock()
}

func (e *Engine) snapshot() []core.Candidate {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.candidates
}

// Search runs one query and returns the ordered, capped result list.
//
// Queries shorter than MinQueryLength (in runes) are answered by the
// fallback selector over the local candidates; the fetcher is never
// consulted for them. Fetch failures are reported to the monitor and
// logged, and produce an empty result; Search never fails.
func (e *Engine) Search(ctx context.Context, query string) []Result {
	e.monitor.Start(query)

	if utf8.RuneCountInString(query) < e.cfg.MinQueryLength {
		results := plainResults(Fallback(e.valid(e.snapshot()), e.cfg))
		e.monitor.FallbackUsed(query, len(results))
		e.monitor.Finish(query, results)
		return results
	}

	pool := e.snapshot()
	if e.fetcher != nil {
		fetched, err := e.fetcher.Fetch(ctx, query)
		if err != nil {
			e.logger.Error("candidate fetch failed", "query", query, "err", err)
			e.monitor.FetchFailed(query, err)
			results := []Result{}
			e.monitor.Finish(query, results)
			return results
		}
		e.monitor.AfterFetch(query, len(fetched))
		pool = fetched
	}

	matched := make([]core.Candidate, 0, len(pool))
	for _, c := range e.valid(pool) {
		if e.strategy(query, searchableText(c, e.cfg.FilterBy)) {
			matched = append(matched, c)
		}
	}
	e.monitor.AfterMatch(query, len(matched))

	ranked := Rank(matched, query)
	if len(ranked) > e.cfg.MaxResults {
		ranked = ranked[:e.cfg.MaxResults]
	}

	results := annotate(ranked, query)
	e.monitor.Finish(query, results)
	return results
}

// SearchGrouped runs Search and partitions the results with the grouping
// function. Without one, the whole list is a single unkeyed group.
func (e *Engine) SearchGrouped(ctx context.Context, query string) []Group {
	results := e.Search(ctx, query)
	if e.group == nil {
		return []Group{{Results: results}}
	}
	return groupResults(results, e.group)
}

// valid filters out malformed candidates, logging each skip. A bad record
// costs one result, never the whole list.
func (e *Engine) valid(candidates []core.Candidate) []core.Candidate {
	out := candidates
	for i, c := range candidates {
		if err := core.ValidateCandidate(c); err == nil {
			continue
		}
		// First malformed candidate: switch to a filtered copy.
		out = make([]core.Candidate, 0, len(candidates))
		out = append(out, candidates[:i]...)
		for _, rest := range candidates[i:] {
			if err := core.ValidateCandidate(rest); err != nil {
				e.logger.Warn("skipping malformed candidate", "id", rest.ID, "err", err)
				continue
			}
			out = append(out, rest)
		}
		break
	}
	return out
}

// searchableText concatenates the configured candidate fields into the
// text the strategy matches against.
func searchableText(c core.Candidate, filterBy []string) string {
	parts := make([]string, 0, len(filterBy))
	for _, field := range filterBy {
		var v string
		switch field {
		case FieldLabel:
			v = c.Label
		case FieldValue:
			v = c.Value
		case FieldCategory:
			v = c.Category
		case FieldDescription:
			v = c.Description
		}
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}
