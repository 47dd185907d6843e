package match

import "github.com/lithammer/fuzzysearch/fuzzy"

// Distance returns the edit distance between a and b: the minimum number
// of single-rune insertions, deletions, and substitutions (each cost 1)
// needed to turn one string into the other.
func Distance(a, b string) int {
	return fuzzy.LevenshteinDistance(a, b)
}

// Similarity returns 1 - Distance(a,b)/max(len(a), len(b)) in [0, 1],
// measured in runes. Two empty strings are fully similar.
func Similarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(Distance(a, b))/float64(longest)
}
