package badger

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/typeahead/core"
	"github.com/poiesic/typeahead/storage"
)

// Catalog implements storage.CandidateCatalog for BadgerDB.
//
// Candidates are stored under a primary key by id, with a secondary
// index from category to id for category scans.
type Catalog struct {
	backend *Backend
}

var _ storage.CandidateCatalog = (*Catalog)(nil)

// NewCatalog creates a candidate catalog on top of a backend.
func NewCatalog(backend *Backend) (storage.CandidateCatalog, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}
	return &Catalog{backend: backend}, nil
}

// Close releases resources. Catalog has no resources of its own; the
// backend is closed by its owner.
func (c *Catalog) Close() error {
	return nil
}

// PutCandidates inserts or replaces candidates.
func (c *Catalog) PutCandidates(ctx context.Context, candidates ...core.Candidate) ([]core.Candidate, error) {
	stored := make([]core.Candidate, 0, len(candidates))

	err := c.backend.WithTx(func(tx *badger.Txn) error {
		for _, candidate := range candidates {
			// Use content-based ID if not set
			if candidate.ID == "" {
				candidate.ID = core.IDFromContent(candidate.Label + "\x00" + candidate.Value)
			}

			if err := core.ValidateCandidate(candidate); err != nil {
				return fmt.Errorf("put candidate %q: %w", candidate.ID, err)
			}

			key := makeCandidateKey(candidate.ID)

			// Clean up a stale category index entry on replace
			old, ok, err := readCandidate(tx, key)
			if err != nil {
				return err
			}
			if ok && old.Category != "" && old.Category != candidate.Category {
				if err := tx.Delete(makeCategoryKey(old.Category, old.ID)); err != nil {
					return err
				}
			}

			// Store primary record
			if err := tx.Set(key, storage.MarshalCandidate(candidate)); err != nil {
				return err
			}

			// Store category index
			if candidate.Category != "" {
				categoryKey := makeCategoryKey(candidate.Category, candidate.ID)
				if err := tx.Set(categoryKey, []byte(candidate.ID)); err != nil {
					return err
				}
			}

			stored = append(stored, candidate)
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return stored, nil
}

// GetCandidate retrieves a single candidate by ID.
func (c *Catalog) GetCandidate(ctx context.Context, id string) (core.Candidate, error) {
	var result core.Candidate
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		candidate, ok, err := readCandidate(tx, makeCandidateKey(id))
		if err != nil {
			return err
		}
		if !ok {
			return storage.ErrNotFound
		}
		result = candidate
		return nil
	}, false)
	return result, err
}

// GetCandidatesByCategory retrieves all candidates in a category.
func (c *Catalog) GetCandidatesByCategory(ctx context.Context, category string) ([]core.Candidate, error) {
	var result []core.Candidate
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialCategoryKey(category)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id string
			err := iter.Item().Value(func(val []byte) error {
				id = string(val)
				return nil
			})
			if err != nil {
				return err
			}

			candidate, ok, err := readCandidate(tx, makeCandidateKey(id))
			if err != nil {
				return err
			}
			// A dangling index entry costs one result, not the scan.
			if !ok {
				continue
			}
			result = append(result, candidate)
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return result, nil
}

// AllCandidates retrieves every stored candidate.
func (c *Catalog) AllCandidates(ctx context.Context) ([]core.Candidate, error) {
	var result []core.Candidate
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(candidatePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				candidate, err := storage.UnmarshalCandidate(val)
				if err != nil {
					return err
				}
				result = append(result, candidate)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteCandidates removes candidates by ID, with their index entries.
func (c *Catalog) DeleteCandidates(ctx context.Context, ids ...string) error {
	return c.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCandidateKey(id)

			candidate, ok, err := readCandidate(tx, key)
			if err != nil {
				return err
			}
			if !ok {
				return storage.ErrNotFound
			}

			if candidate.Category != "" {
				if err := tx.Delete(makeCategoryKey(candidate.Category, candidate.ID)); err != nil {
					return err
				}
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// readCandidate reads and deserializes a candidate within a transaction.
// Missing keys return ok=false rather than an error.
func readCandidate(tx *badger.Txn, key []byte) (core.Candidate, bool, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return core.Candidate{}, false, nil
		}
		return core.Candidate{}, false, err
	}

	var candidate core.Candidate
	err = item.Value(func(val []byte) error {
		candidate, err = storage.UnmarshalCandidate(val)
		return err
	})
	if err != nil {
		return core.Candidate{}, false, err
	}
	return candidate, true, nil
}
