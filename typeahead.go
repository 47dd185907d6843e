// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package typeahead

import (
	"context"
	"log/slog"

	"github.com/poiesic/typeahead/ingestion"
	"github.com/poiesic/typeahead/search"
	"github.com/poiesic/typeahead/storage"
	"github.com/poiesic/typeahead/storage/badger"
	"github.com/poiesic/typeahead/widget"
)

// Store bundles a candidate catalog with constructors for the loaders,
// engines, and widget sessions that consume it.
type Store struct {
	backend *badger.Backend
	catalog storage.CandidateCatalog
	logger  *slog.Logger
}

// Open opens a persistent store at the given path, creating it if
// needed.
func Open(filePath string) (*Store, error) {
	return open(filePath, false)
}

// OpenInMemory opens a store backed by memory only. Useful for tests
// and ephemeral candidate sets.
func OpenInMemory() (*Store, error) {
	return open("", true)
}

func open(filePath string, inMemory bool) (*Store, error) {
	backend, err := badger.OpenBackend(filePath, inMemory)
	if err != nil {
		return nil, err
	}

	catalog, err := badger.NewCatalog(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Store{
		backend: backend,
		catalog: catalog,
		logger:  slog.Default(),
	}, nil
}

// Close closes the catalog and the underlying backend.
func (s *Store) Close() error {
	if err := s.catalog.Close(); err != nil {
		s.logger.Error("error closing candidate catalog", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Catalog exposes the candidate catalog.
func (s *Store) Catalog() storage.CandidateCatalog {
	return s.catalog
}

// NewLoader creates a bulk loader writing into the store's catalog.
func (s *Store) NewLoader(opts ...ingestion.Option) (*ingestion.Loader, error) {
	return ingestion.NewLoader(s.catalog, opts...)
}

// NewEngine creates a search engine over the store's current candidate
// set. The candidates are snapshotted at construction; reload with
// Engine.SetCandidates after further ingestion.
func (s *Store) NewEngine(ctx context.Context, cfg search.Config, opts ...search.Option) (*search.Engine, error) {
	candidates, err := s.catalog.AllCandidates(ctx)
	if err != nil {
		return nil, err
	}
	opts = append([]search.Option{search.WithCandidates(candidates)}, opts...)
	return search.NewEngine(cfg, opts...)
}

// NewSession creates an interactive widget session over a fresh engine.
func (s *Store) NewSession(ctx context.Context, cfg search.Config, engineOpts []search.Option, sessionOpts ...widget.Option) (*widget.Session, error) {
	engine, err := s.NewEngine(ctx, cfg, engineOpts...)
	if err != nil {
		return nil, err
	}
	return widget.NewSession(engine, sessionOpts...)
}
