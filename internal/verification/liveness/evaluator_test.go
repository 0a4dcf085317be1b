package liveness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestEvaluate(t *testing.T) {
	e := NewEvaluator(90.0)

	tests := []struct {
		name       string
		confidence *float64
		wantPassed bool
		wantReason string
	}{
		{
			name:       "above minimum passes",
			confidence: ptr(95.0),
			wantPassed: true,
		},
		{
			name:       "boundary is inclusive",
			confidence: ptr(90.0),
			wantPassed: true,
		},
		{
			name:       "just below fails",
			confidence: ptr(89.9),
			wantPassed: false,
			wantReason: "liveness confidence 89.9 below minimum 90.0",
		},
		{
			name:       "just above passes",
			confidence: ptr(90.1),
			wantPassed: true,
		},
		{
			name:       "nil confidence fails closed",
			confidence: nil,
			wantPassed: false,
			wantReason: "liveness confidence unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := e.Evaluate(tt.confidence)
			assert.Equal(t, tt.wantPassed, outcome.Passed)
			assert.Equal(t, tt.wantReason, outcome.Reason)
			if tt.confidence != nil {
				assert.Equal(t, *tt.confidence, outcome.Confidence)
			}
		})
	}
}

func TestEvaluate_ZeroMinimumAcceptsEverything(t *testing.T) {
	// An explicitly configured zero threshold is honored, not replaced by
	// the default.
	e := NewEvaluator(0)
	assert.True(t, e.Evaluate(ptr(0)).Passed)
	assert.False(t, e.Evaluate(nil).Passed)
}
