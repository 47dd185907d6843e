package badger

import "fmt"

// Key prefixes for different data types
const (
	candidatePrefix = "cand"
	categoryPrefix  = "candcat"
)

// makeCandidateKey generates a key for a candidate by ID.
func makeCandidateKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", candidatePrefix, id))
}

// makeCategoryKey generates a composite key for the category index.
// Format: prefix:category:id
func makeCategoryKey(category, id string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", categoryPrefix, category, id))
}

// makePartialCategoryKey generates a partial key for category scans.
// Format: prefix:category:
func makePartialCategoryKey(category string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", categoryPrefix, category))
}
