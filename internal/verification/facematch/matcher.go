// Package facematch judges ranked face-comparison candidates against the
// configured similarity bar. The matcher never calls the comparison service
// and never touches the verification store.
package facematch

import "idverify/internal/verification/ports"

// DefaultSimilarityThreshold is used when no threshold is configured. An
// explicitly configured zero is a valid threshold and must not be replaced
// by this default.
const DefaultSimilarityThreshold = 80.0

// Matcher derives a boolean match decision from ranked candidates.
type Matcher struct {
	threshold float64
}

// NewMatcher creates a matcher with an explicit similarity threshold.
func NewMatcher(threshold float64) *Matcher {
	return &Matcher{threshold: threshold}
}

// Threshold returns the configured similarity bar, forwarded to the
// comparison service so it can prune candidates upstream.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Result is a match verdict with its evidence.
type Result struct {
	Matched    bool
	Similarity float64
}

// Decide picks the best candidate and thresholds it. Zero candidates is a
// normal negative result: {matched: false, similarity: 0}. With multiple
// candidates only the highest similarity counts; ties keep the first-seen
// candidate from the upstream ranking.
func (m *Matcher) Decide(candidates []ports.FaceMatchCandidate) Result {
	if len(candidates) == 0 {
		return Result{Matched: false, Similarity: 0}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Similarity > best.Similarity {
			best = c
		}
	}

	return Result{
		Matched:    best.Similarity >= m.threshold,
		Similarity: best.Similarity,
	}
}
