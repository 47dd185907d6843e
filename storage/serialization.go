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


package storage

import (
	"github.com/poiesic/typeahead/core"
)

// MarshalCandidate serializes a Candidate to bytes.
func MarshalCandidate(candidate core.Candidate) []byte {
	buf := make([]byte, core.CandidateMUS.Size(candidate))
	core.CandidateMUS.Marshal(candidate, buf)
	return buf
}

// UnmarshalCandidate deserializes a Candidate from bytes.
func UnmarshalCandidate(data []byte) (core.Candidate, error) {
	candidate, _, err := core.CandidateMUS.Unmarshal(data)
	return candidate, err
}
