package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fitsight/internal/domain"
)

func TestClassifyTrend_TooFewPoints(t *testing.T) {
	assert.Equal(t, domain.TrendStable, domain.ClassifyTrend(nil, 0.01))
	assert.Equal(t, domain.TrendStable, domain.ClassifyTrend([]float64{}, 0.01))
	assert.Equal(t, domain.TrendStable, domain.ClassifyTrend([]float64{80}, 0.01))
}

func TestClassifyTrend_Halves(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   domain.Trend
	}{
		{"rising", []float64{80, 80, 90, 90}, domain.TrendUp},
		{"falling", []float64{90, 90, 80, 80}, domain.TrendDown},
		{"flat", []float64{85, 85, 85, 85}, domain.TrendStable},
		// exactly +1.00% sits on the boundary and stays stable
		{"boundary exact", []float64{100, 101}, domain.TrendStable},
		{"just over boundary", []float64{100, 101.01}, domain.TrendUp},
		{"just under boundary down", []float64{100, 98.99}, domain.TrendDown},
		{"boundary exact down", []float64{100, 99}, domain.TrendStable},
		// odd length: middle element belongs to the second half,
		// halves are [100] and [100, 106] -> +3%
		{"odd length split", []float64{100, 100, 106}, domain.TrendUp},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.ClassifyTrend(tc.values, 0.01))
		})
	}
}

func TestClassifyTrend_ZeroBaseline(t *testing.T) {
	// a zero first-half mean must not divide by zero
	assert.Equal(t, domain.TrendUp, domain.ClassifyTrend([]float64{0, 5}, 0.01))
	assert.Equal(t, domain.TrendStable, domain.ClassifyTrend([]float64{0, 0}, 0.01))
}

func TestCompareWindows(t *testing.T) {
	thisWeek := []float64{78, 78.2, 78.1, 77.9, 78, 78.1, 78}
	lastWeek := []float64{80, 80.1, 79.9, 80, 80.2, 80, 79.8}

	assert.Equal(t, domain.TrendDown, domain.CompareWindows(lastWeek, thisWeek, 0.01))
	assert.Equal(t, domain.TrendUp, domain.CompareWindows(thisWeek, lastWeek, 0.01))
}

func TestCompareWindows_EmptyWindow(t *testing.T) {
	assert.Equal(t, domain.TrendStable, domain.CompareWindows(nil, []float64{80}, 0.01))
	assert.Equal(t, domain.TrendStable, domain.CompareWindows([]float64{80}, nil, 0.01))
}
