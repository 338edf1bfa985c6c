package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fitsight/internal/domain"
)

func fullProfile() *domain.UserProfile {
	return &domain.UserProfile{
		HeightCm:      180,
		Sex:           "male",
		BirthDate:     time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
		ActivityLevel: "moderate",
		Goal:          domain.GoalFatLoss,
	}
}

func TestDataCompleteness(t *testing.T) {
	assert.Equal(t, 0.0, domain.DataCompleteness(nil, false))

	full := domain.DataCompleteness(fullProfile(), true)
	partial := domain.DataCompleteness(&domain.UserProfile{HeightCm: 180}, true)
	noWeight := domain.DataCompleteness(fullProfile(), false)

	assert.Greater(t, full, partial)
	assert.Greater(t, full, noWeight)
	assert.GreaterOrEqual(t, full, 0.0)
	assert.LessOrEqual(t, full, 1.0)
}

func TestAdjustConfidence_Bounds(t *testing.T) {
	for raw := 30; raw <= 95; raw += 5 {
		for _, c := range []float64{0, 0.25, 0.5, 0.75, 1} {
			got := domain.AdjustConfidence(raw, c)
			assert.GreaterOrEqual(t, float64(got), 0.7*float64(raw)-0.5, "raw=%d c=%v", raw, c)
			assert.LessOrEqual(t, float64(got), float64(raw)+0.5, "raw=%d c=%v", raw, c)
		}
	}
}

func TestAdjustConfidence_MonotonicInCompleteness(t *testing.T) {
	prev := -1
	for _, c := range []float64{0, 0.1, 0.2, 0.4, 0.6, 0.8, 1} {
		got := domain.AdjustConfidence(80, c)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestAdjustConfidence_ClampsCompleteness(t *testing.T) {
	assert.Equal(t, domain.AdjustConfidence(80, 0), domain.AdjustConfidence(80, -3))
	assert.Equal(t, domain.AdjustConfidence(80, 1), domain.AdjustConfidence(80, 7))
}

func TestSanitizeEstimate_Defaults(t *testing.T) {
	got := domain.SanitizeEstimate(domain.Estimate{})

	assert.Equal(t, 15.0, got.BodyFatMin)
	assert.Equal(t, 18.0, got.BodyFatMax)
	assert.Equal(t, 60.0, got.Confidence)
}

func TestSanitizeEstimate_ClampsRange(t *testing.T) {
	got := domain.SanitizeEstimate(domain.Estimate{
		BodyFatMin: 2, BodyFatMax: 55, Confidence: 120,
	})

	assert.Equal(t, 5.0, got.BodyFatMin)
	assert.Equal(t, 40.0, got.BodyFatMax)
	assert.Equal(t, 95.0, got.Confidence)
}

func TestSanitizeEstimate_InvertedRange(t *testing.T) {
	got := domain.SanitizeEstimate(domain.Estimate{
		BodyFatMin: 22, BodyFatMax: 18, Confidence: 70,
	})

	assert.Equal(t, 22.0, got.BodyFatMin)
	assert.Equal(t, 22.0, got.BodyFatMax)
}

func TestSanitizeEstimate_Idempotent(t *testing.T) {
	once := domain.SanitizeEstimate(domain.Estimate{
		BodyFatMin: 2, BodyFatMax: 55, Confidence: 7, LeanMassMin: 50, LeanMassMax: 40,
	})
	twice := domain.SanitizeEstimate(once)

	assert.Equal(t, once, twice)
}
