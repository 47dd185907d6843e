package storage

import (
	"context"

	"github.com/poiesic/typeahead/core"
)

// CandidateCatalog provides operations for managing the persisted
// candidate set. Implementations must be thread-safe and support
// concurrent access.
type CandidateCatalog interface {
	// PutCandidates inserts or replaces candidates. Candidates with an
	// empty ID get a content-based ID derived from label and value.
	// Returns the stored candidates with IDs populated.
	PutCandidates(ctx context.Context, candidates ...core.Candidate) ([]core.Candidate, error)

	// GetCandidate retrieves a single candidate by ID.
	// Returns ErrNotFound if the candidate doesn't exist.
	GetCandidate(ctx context.Context, id string) (core.Candidate, error)

	// GetCandidatesByCategory retrieves all candidates in a category via
	// the category index, in index order.
	GetCandidatesByCategory(ctx context.Context, category string) ([]core.Candidate, error)

	// AllCandidates retrieves every stored candidate, in key order.
	AllCandidates(ctx context.Context) ([]core.Candidate, error)

	// DeleteCandidates removes candidates by ID, together with their
	// index entries. Returns ErrNotFound if any candidate doesn't exist.
	DeleteCandidates(ctx context.Context, ids ...string) error

	// Close closes the catalog and releases resources.
	Close() error
}
