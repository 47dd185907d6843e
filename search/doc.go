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


// Package search orchestrates typeahead queries over a candidate set.
//
// The Engine type combines:
//   - a match strategy (exact, fuzzy, semantic, or hybrid) deciding
//     candidate inclusion
//   - a ranker putting exact-prefix label matches first, then descending
//     popularity, stable for ties
//   - a fallback selector surfacing recent, trending, and popular items
//     when the query is shorter than the configured minimum
//
// Candidates come from a local slice or from an asynchronous Fetcher. Fetch
// failures never escape Search: they are logged, reported to the Monitor,
// and degrade to an empty result list.
package search
