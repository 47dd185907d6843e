package ingestion

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/typeahead/core"
	"github.com/poiesic/typeahead/storage"
)

const defaultBatchSize = 64

// Loader writes candidate sets into a catalog in concurrent batches.
type Loader struct {
	catalog   storage.CandidateCatalog
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Stats summarizes one load.
type Stats struct {
	Loaded  int // candidates written to the catalog
	Skipped int // malformed candidates dropped
}

// Option configures a Loader.
type Option func(*Loader) error

// WithPoolSize sets the worker pool size for concurrent batch writes.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}

		if l.pool != nil {
			l.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		l.pool = pool
		return nil
	}
}

// WithBatchSize sets how many candidates each pool task writes.
// Default is 64.
func WithBatchSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}
		l.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a loader writing into the given catalog.
func NewLoader(catalog storage.CandidateCatalog, opts ...Option) (*Loader, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		catalog:   catalog,
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(l); optErr != nil {
			l.Release()
			return nil, optErr
		}
	}

	return l, nil
}

// Load normalizes and writes candidates to the catalog. Candidates with
// an empty ID get a content-based one; negative popularity is clamped to
// zero; candidates still failing validation are logged and skipped.
// Batches are written concurrently; the first write error aborts the
// remaining result but already-submitted batches run to completion.
func (l *Loader) Load(ctx context.Context, candidates []core.Candidate) (Stats, error) {
	var stats Stats

	valid := make([]core.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == "" {
			candidate.ID = core.IDFromContent(candidate.Label + "\x00" + candidate.Value)
		}
		if candidate.Popularity < 0 {
			candidate.Popularity = 0
		}
		if err := core.ValidateCandidate(candidate); err != nil {
			l.logger.Warn("skipping malformed candidate", "id", candidate.ID, "err", err)
			stats.Skipped++
			continue
		}
		valid = append(valid, candidate)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		loaded   int
	)

	for start := 0; start < len(valid); start += l.batchSize {
		end := start + l.batchSize
		if end > len(valid) {
			end = len(valid)
		}
		batch := valid[start:end]

		wg.Add(1)
		err := l.pool.Submit(func() {
			defer wg.Done()

			stored, err := l.catalog.PutCandidates(ctx, batch...)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				l.logger.Error("error writing candidate batch", "size", len(batch), "err", err)
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			loaded += len(stored)
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			break
		}
	}

	wg.Wait()

	stats.Loaded = loaded
	return stats, firstErr
}

// LoadJSON decodes a JSON array of candidates and loads it.
func (l *Loader) LoadJSON(ctx context.Context, r io.Reader) (Stats, error) {
	var candidates []core.Candidate
	if err := json.NewDecoder(r).Decode(&candidates); err != nil {
		return Stats{}, err
	}
	return l.Load(ctx, candidates)
}

// Release releases the worker pool.
// The loader should not be used after calling Release.
func (l *Loader) Release() {
	if l.pool != nil {
		l.pool.Release()
	}
}
