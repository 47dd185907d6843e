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


package core

import "fmt"

// ValidateCandidate validates a Candidate according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Label must not be empty
//   - Popularity must not be negative
//
// NOT validated:
//   - Value, Category, Description (all optional)
//   - Recent/Trending flags (absence means false)
func ValidateCandidate(candidate Candidate) error {
	if candidate.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrEmptyID)
	}

	if candidate.Label == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrEmptyLabel)
	}

	if candidate.Popularity < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrNegativePopularity)
	}

	return nil
}
