package match

import "strings"

// Algorithm names a matching strategy.
type Algorithm string

const (
	// AlgorithmExact matches by substring containment, honoring the
	// configured case and accent sensitivity.
	AlgorithmExact Algorithm = "exact"

	// AlgorithmFuzzy matches with typo tolerance via Fuzzy.
	AlgorithmFuzzy Algorithm = "fuzzy"

	// AlgorithmSemantic matches by substring containment or by any
	// whitespace-split query token being contained in the text. The
	// heuristic is deliberately boolean; it does not rank by overlap.
	AlgorithmSemantic Algorithm = "semantic"

	// AlgorithmHybrid matches by case-insensitive substring containment or
	// fuzzy match. It is the default for unrecognized algorithm names.
	AlgorithmHybrid Algorithm = "hybrid"
)

// ParseAlgorithm maps a name to an Algorithm. Unrecognized names fall back
// to hybrid rather than failing.
func ParseAlgorithm(name string) Algorithm {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case AlgorithmExact:
		return AlgorithmExact
	case AlgorithmFuzzy:
		return AlgorithmFuzzy
	case AlgorithmSemantic:
		return AlgorithmSemantic
	default:
		return AlgorithmHybrid
	}
}

// Strategy decides whether a query includes a candidate given its
// concatenated searchable text.
type Strategy func(query, text string) bool

// Options configure strategy construction.
type Options struct {
	// Threshold is the minimum fuzzy similarity in [0, 1].
	Threshold float64

	// CaseSensitive affects exact matching only; fuzzy, semantic, and
	// hybrid comparisons are always case-insensitive.
	CaseSensitive bool

	// AccentSensitive preserves diacritics during comparison. When false,
	// accents are folded away on both sides.
	AccentSensitive bool
}

// New returns the predicate for the given algorithm. Unrecognized values
// get the hybrid strategy.
func New(alg Algorithm, opts Options) Strategy {
	switch alg {
	case AlgorithmExact:
		return exactStrategy(opts)
	case AlgorithmFuzzy:
		return fuzzyStrategy(opts)
	case AlgorithmSemantic:
		return semanticStrategy(opts)
	default:
		return hybridStrategy(opts)
	}
}

func exactStrategy(opts Options) Strategy {
	return func(query, text string) bool {
		q := Fold(query, opts.CaseSensitive, opts.AccentSensitive)
		t := Fold(text, opts.CaseSensitive, opts.AccentSensitive)
		return strings.Contains(t, q)
	}
}

func fuzzyStrategy(opts Options) Strategy {
	return func(query, text string) bool {
		q := Fold(query, false, opts.AccentSensitive)
		t := Fold(text, false, opts.AccentSensitive)
		return Fuzzy(q, t, opts.Threshold)
	}
}

func semanticStrategy(opts Options) Strategy {
	return func(query, text string) bool {
		q := Fold(query, false, opts.AccentSensitive)
		t := Fold(text, false, opts.AccentSensitive)
		if strings.Contains(t, q) {
			return true
		}
		for _, token := range strings.Fields(q) {
			if strings.Contains(t, token) {
				return true
			}
		}
		return false
	}
}

func hybridStrategy(opts Options) Strategy {
	return func(query, text string) bool {
		q := Fold(query, false, opts.AccentSensitive)
		t := Fold(text, false, opts.AccentSensitive)
		return strings.Contains(t, q) || Fuzzy(q, t, opts.Threshold)
	}
}
