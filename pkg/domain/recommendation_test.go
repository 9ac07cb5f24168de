package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImpactForScore(t *testing.T) {
	score := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		score    *float64
		expected Impact
	}{
		{name: "low score is high impact", score: score(0.3), expected: ImpactHigh},
		{name: "mid score is medium impact", score: score(0.7), expected: ImpactMedium},
		{name: "near perfect score is low impact", score: score(0.95), expected: ImpactLow},
		{name: "missing score defaults to medium", score: nil, expected: ImpactMedium},
		{name: "boundary 0.5 is medium", score: score(0.5), expected: ImpactMedium},
		{name: "boundary 0.9 is low", score: score(0.9), expected: ImpactLow},
		{name: "zero score is high", score: score(0), expected: ImpactHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ImpactForScore(tt.score))
		})
	}
}
