package fuzzy

import (
	"gonum.org/v1/gonum/floats"
)

var defaultTermNames = map[int][]string{
	3: {"poor", "average", "good"},
	5: {"poor", "mediocre", "average", "decent", "good"},
	7: {"dismal", "poor", "mediocre", "average", "decent", "good", "excellent"},
}

// DefaultTermNames returns the conventional quality names for a partition of n terms.
// Only 3, 5 and 7 terms have conventional names.
func DefaultTermNames(n int) ([]string, error) {
	names, ok := defaultTermNames[n]
	if !ok {
		return nil, constructionErrorf(ErrInvalidShape, "automf", "no default names for %d terms", n)
	}
	return append([]string(nil), names...), nil
}

// Automf partitions the universe into len(names) overlapping triangular terms.
// Peaks are evenly spaced from Min to Max and every term reaches zero at the
// peaks of its neighbours, so adjacent terms cross at 0.5. The first and last
// terms are shoulders with their plateau at the universe boundary.
func Automf(u *Universe, names ...string) ([]Term, error) {
	n := len(names)
	if n < 2 {
		return nil, constructionErrorf(ErrInvalidShape, "automf", "need at least 2 terms, got %d", n)
	}
	seen := make(map[string]struct{}, n)
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return nil, constructionErrorf(ErrDuplicateName, name, "automf term")
		}
		seen[name] = struct{}{}
	}

	peaks := floats.Span(make([]float64, n), u.Min(), u.Max())
	terms := make([]Term, n)
	for i, name := range names {
		a, c := peaks[i], peaks[i]
		if i > 0 {
			a = peaks[i-1]
		}
		if i < n-1 {
			c = peaks[i+1]
		}
		terms[i] = Term{Name: name, MF: Triangular{A: a, B: peaks[i], C: c}}
	}
	return terms, nil
}
