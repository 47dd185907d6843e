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


// Package match provides the query-matching primitives of the typeahead
// engine: edit distance and normalized similarity, a typo-tolerant fuzzy
// matcher, and the pluggable inclusion strategies (exact, fuzzy, semantic,
// hybrid) the engine selects between.
//
// All functions in this package are pure and deterministic. Text
// normalization (case and accent folding) happens here so the engine and
// the strategies agree on a single comparison form.
package match
