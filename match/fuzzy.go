package match

import "strings"

// Fuzzy reports whether query matches text with typo tolerance. The
// threshold is the minimum Similarity in [0, 1] a word or window must reach.
//
// The checks run in order, short-circuiting on the first success:
//  1. case-insensitive substring containment of query in text
//  2. per word of text: Similarity(query, word) >= threshold
//  3. per word at least as long as query: a sliding window of query's
//     rune length across the word reaching the threshold
//
// An empty query matches everything; the engine routes empty queries to
// the fallback path before this matcher in normal flow.
func Fuzzy(query, text string, threshold float64) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	t := strings.ToLower(text)

	if strings.Contains(t, q) {
		return true
	}

	qr := []rune(q)
	for _, word := range strings.Fields(t) {
		if Similarity(q, word) >= threshold {
			return true
		}

		wr := []rune(word)
		if len(wr) < len(qr) {
			continue
		}
		for i := 0; i+len(qr) <= len(wr); i++ {
			if Similarity(q, string(wr[i:i+len(qr)])) >= threshold {
				return true
			}
		}
	}

	return false
}
