package search

import (
	"unicode"

	"github.com/poiesic/typeahead/core"
)

// Span marks a matched region of a display field as rune offsets
// [Start, End). The rendering layer decorates these; the engine never
// produces markup.
type Span struct {
	Start int
	End   int
}

// Result is one ranked candidate plus highlight metadata for the
// rendering collaborator. Spans are nil when the query does not occur
// verbatim in the field (fuzzy-only matches, fallback results).
type Result struct {
	Candidate       core.Candidate
	LabelSpan       *Span
	DescriptionSpan *Span
}

// spanOf returns the first case-insensitive occurrence of query in text
// as rune offsets into text, or nil. Case folding is done rune by rune,
// never through a full lowercase mapping that could change the rune
// count, so the offsets always index the original text.
func spanOf(query, text string) *Span {
	if query == "" || text == "" {
		return nil
	}
	q := foldRunes(query)
	t := foldRunes(text)
	for i := 0; i+len(q) <= len(t); i++ {
		if runesMatchAt(t, i, q) {
			return &Span{Start: i, End: i + len(q)}
		}
	}
	return nil
}

func foldRunes(s string) []rune {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}

func runesMatchAt(text []rune, at int, query []rune) bool {
	for i, r := range query {
		if text[at+i] != r {
			return false
		}
	}
	return true
}

// annotate wraps ranked candidates in Results with highlight spans for
// the label and description.
func annotate(ranked []core.Candidate, query string) []Result {
	results := make([]Result, len(ranked))
	for i, c := range ranked {
		results[i] = Result{
			Candidate:       c,
			LabelSpan:       spanOf(query, c.Label),
			DescriptionSpan: spanOf(query, c.Description),
		}
	}
	return results
}

// plainResults wraps candidates without highlight metadata; used for the
// fallback path where there is no query to highlight.
func plainResults(candidates []core.Candidate) []Result {
	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = Result{Candidate: c}
	}
	return results
}
