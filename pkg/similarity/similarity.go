package similarity

import "strings"

// Scorer computes a normalized similarity score in [0, 1] between a
// query string and a candidate string. Callers pick the acceptance
// threshold; swapping the algorithm must not require touching them.
type Scorer interface {
	Score(query, candidate string) float64
}

// Containment scores by substring containment ratio, falling back to
// character overlap when neither string contains the other. Both
// inputs are case-folded and trimmed before scoring.
type Containment struct{}

// NewContainment returns the default scorer.
func NewContainment() Containment {
	return Containment{}
}

var _ Scorer = Containment{}

// Score implements Scorer.
func (Containment) Score(query, candidate string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	c := strings.ToLower(strings.TrimSpace(candidate))

	if q == "" || c == "" {
		return 0
	}

	if strings.Contains(c, q) {
		return float64(len(q)) / float64(len(c))
	}
	if strings.Contains(q, c) {
		return float64(len(c)) / float64(len(q))
	}

	// Character overlap: fraction of query characters present in the
	// candidate, normalized by the longer string.
	common := 0
	for _, r := range q {
		if strings.ContainsRune(c, r) {
			common++
		}
	}

	longer := len([]rune(q))
	if l := len([]rune(c)); l > longer {
		longer = l
	}
	return float64(common) / float64(longer)
}
