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


package search

import "errors"

var (
	// ErrNilFetcher is returned when WithFetcher is given a nil fetcher.
	ErrNilFetcher = errors.New("fetcher required")

	// ErrNilGroupFunc is returned when WithGroupFunc is given a nil function.
	ErrNilGroupFunc = errors.New("group function required")

	// ErrNilMonitor is returned when WithMonitor is given a nil monitor.
	ErrNilMonitor = errors.New("monitor required")
)
