package core

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// IDFromContent generates a deterministic candidate ID from text content
// using BLAKE2b hashing. Identical content produces identical IDs, which
// keeps re-ingestion of the same candidate set idempotent.
func IDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// Candidate is one selectable typeahead item.
//
// Two candidates with the same ID are the same logical item regardless of
// other field differences; every merge in the engine deduplicates by ID
// keeping the first-seen occurrence. The engine never mutates a Candidate,
// it only reads and recombines them into new lists.
type Candidate struct {
	ID          string
	Label       string // primary display and match text, required
	Value       string // semantic payload, distinct from the display text
	Category    string
	Description string
	Popularity  float64 // non-negative; zero means unranked
	Recent      bool
	Trending    bool
}
