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


// Package storage provides the storage abstraction layer for typeahead.
//
// This package defines the catalog interface that decouples candidate
// persistence from the search engine. It allows different storage
// backends (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return interfaces to enforce
// abstraction:
//
//	catalog, err := badger.NewCatalog(backend)  // returns storage.CandidateCatalog
//
// # Usage
//
// Create a persistent catalog:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	catalog, err := badger.NewCatalog(backend)
//
// Use in tests with in-memory storage:
//
//	catalog, backend, err := badger.NewMemoryCatalog()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
// # Thread Safety
//
// All catalog implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
