package widget

import (
	"context"
	"log/slog"
	"sync"

	"github.com/poiesic/typeahead/core"
	"github.com/poiesic/typeahead/search"
)

// Session is one interactive widget instance: it debounces query edits
// into engine searches, tracks dropdown navigation over the live result
// list, and routes confirms into the selector.
//
// Every search is tagged with a generation counter. A result arriving
// after a newer query was issued is discarded, so superseded searches
// never overwrite the displayed list.
type Session struct {
	mu        sync.Mutex
	engine    *search.Engine
	debouncer *Debouncer
	selector  *Selector
	nav       *Nav
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	gen     uint64
	query   string
	results []search.Result

	onResults   func(query string, results []search.Result)
	onSelection func(selected []core.Candidate)
}

// Option configures a Session.
type Option func(*Session) error

// Multiple puts the session in multi-select mode.
func Multiple() Option {
	return func(s *Session) error {
		s.selector = NewSelector(true)
		return nil
	}
}

// OnResults registers a callback invoked with each fresh result list.
// Stale results never reach it.
func OnResults(fn func(query string, results []search.Result)) Option {
	return func(s *Session) error {
		if fn == nil {
			return ErrNilCallback
		}
		s.onResults = fn
		return nil
	}
}

// OnSelection registers a callback invoked with the new selection after
// every toggle and every effective remove. The callback runs without the
// session lock held, so it may call back into the session.
func OnSelection(fn func(selected []core.Candidate)) Option {
	return func(s *Session) error {
		if fn == nil {
			return ErrNilCallback
		}
		s.onSelection = fn
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSession creates a session around an engine. The debounce delay
// comes from the engine configuration.
func NewSession(engine *search.Engine, opts ...Option) (*Session, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		engine:    engine,
		debouncer: NewDebouncer(engine.Config().Debounce),
		selector:  NewSelector(false),
		nav:       NewNav(),
		logger:    slog.Default(),
		ctx:       ctx,
		cancel:    cancel,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			cancel()
			return nil, err
		}
	}

	return s, nil
}

// SetQuery records a query edit: the dropdown opens, any pending search
// is discarded, and a new one is scheduled after the debounce delay.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	s.query = query
	s.gen++
	gen := s.gen
	s.nav.Open()
	s.mu.Unlock()

	s.debouncer.Schedule(func() {
		s.runSearch(query, gen)
	})
}

func (s *Session) runSearch(query string, gen uint64) {
	results := s.engine.Search(s.ctx, query)

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.logger.Debug("discarding stale search results", "query", query)
		return
	}
	s.results = results
	s.nav.Clamp(len(results))
	cb := s.onResults
	s.mu.Unlock()

	if cb != nil {
		cb(query, results)
	}
}

// Query returns the latest query text.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Results returns a copy of the currently displayed result list.
func (s *Session) Results() []search.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]search.Result, len(s.results))
	copy(out, s.results)
	return out
}

// Open opens the dropdown without changing the query, e.g. on focus.
func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.Open()
}

// Escape closes the dropdown and clears the highlight.
func (s *Session) Escape() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.Escape()
}

// IsOpen reports whether the dropdown is open.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.IsOpen()
}

// Highlighted returns the highlighted index, or NoHighlight.
func (s *Session) Highlighted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Highlighted()
}

// MoveDown advances the highlight over the current results.
func (s *Session) MoveDown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.MoveDown(len(s.results))
}

// MoveUp retreats the highlight over the current results.
func (s *Session) MoveUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.MoveUp(len(s.results))
}

// Confirm toggles the highlighted candidate. In single mode a confirm
// also closes the dropdown. Returns the candidate and whether a valid
// item was highlighted.
func (s *Session) Confirm() (core.Candidate, bool) {
	s.mu.Lock()

	idx := s.nav.Confirm(len(s.results))
	if idx == NoHighlight {
		s.mu.Unlock()
		return core.Candidate{}, false
	}

	candidate := s.results[idx].Candidate
	s.selector.Toggle(candidate)
	if !s.selector.Multiple() {
		s.nav.Escape()
	}
	selected := s.selector.Selected()
	cb := s.onSelection
	s.mu.Unlock()

	if cb != nil {
		cb(selected)
	}
	return candidate, true
}

// Remove drops a candidate from a multi selection by id.
func (s *Session) Remove(id string) bool {
	s.mu.Lock()
	removed := s.selector.Remove(id)
	var selected []core.Candidate
	if removed {
		selected = s.selector.Selected()
	}
	cb := s.onSelection
	s.mu.Unlock()

	if removed && cb != nil {
		cb(selected)
	}
	return removed
}

// Selection returns a copy of the current selection in toggle order.
func (s *Session) Selection() []core.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selector.Selected()
}

// Recent returns a copy of the recent picks, most recent first.
func (s *Session) Recent() []core.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selector.Recent()
}

// Close tears the session down: the pending search is cancelled, any
// in-flight fetch is abandoned, and late results are discarded.
func (s *Session) Close() {
	s.debouncer.Cancel()
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()
	s.cancel()
}
