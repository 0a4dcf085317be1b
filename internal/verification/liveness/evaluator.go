// Package liveness judges liveness session results against the configured
// confidence bar. The evaluator never talks to the biometric provider; it
// only scores a result the orchestrator already fetched.
package liveness

import "fmt"

// DefaultMinConfidence is the confidence bar used when no threshold is
// configured. An explicitly configured zero is a valid threshold and must
// not be replaced by this default.
const DefaultMinConfidence = 90.0

// Evaluator decides pass/fail for a liveness confidence score.
type Evaluator struct {
	minConfidence float64
}

// NewEvaluator creates an evaluator with an explicit minimum confidence.
// Callers resolve configuration-vs-default before construction.
func NewEvaluator(minConfidence float64) *Evaluator {
	return &Evaluator{minConfidence: minConfidence}
}

// MinConfidence returns the configured bar.
func (e *Evaluator) MinConfidence() float64 {
	return e.minConfidence
}

// Outcome is a liveness verdict with its evidence. A failed check is a
// normal outcome, never an error.
type Outcome struct {
	Passed     bool
	Confidence float64
	Reason     string
}

// Evaluate judges a session's confidence score. The boundary is inclusive:
// a score equal to the minimum passes. A nil score fails closed; an absent
// measurement is a failure, not a skipped check.
func (e *Evaluator) Evaluate(confidence *float64) Outcome {
	if confidence == nil {
		return Outcome{
			Passed: false,
			Reason: "liveness confidence unavailable",
		}
	}
	if *confidence < e.minConfidence {
		return Outcome{
			Passed:     false,
			Confidence: *confidence,
			Reason:     fmt.Sprintf("liveness confidence %.1f below minimum %.1f", *confidence, e.minConfidence),
		}
	}
	return Outcome{Passed: true, Confidence: *confidence}
}
