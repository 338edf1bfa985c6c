package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fitsight/internal/domain"
)

func obs(value float64, daysAgo int) domain.Observation {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	return domain.Observation{Value: value, At: base.AddDate(0, 0, -daysAgo)}
}

func TestComputeChange_WeeklyRate(t *testing.T) {
	// 80kg two weeks ago down to 78kg today
	got := domain.ComputeChange(obs(80, 14), obs(78, 0), domain.GoalFatLoss)

	assert.Equal(t, -2.0, got.Absolute)
	assert.Equal(t, 14, got.Days)
	assert.Equal(t, -1.0, got.WeeklyRate)
	assert.Equal(t, domain.DirectionDecreasing, got.Direction)
	assert.Equal(t, domain.GoalImproving, got.GoalDirection)
}

func TestComputeChange_ArgumentOrderIrrelevant(t *testing.T) {
	a := obs(80, 14)
	b := obs(78, 0)

	assert.Equal(t,
		domain.ComputeChange(a, b, domain.GoalFatLoss),
		domain.ComputeChange(b, a, domain.GoalFatLoss))
}

func TestComputeChange_SameDay(t *testing.T) {
	got := domain.ComputeChange(obs(80, 0), obs(81, 0), domain.GoalMuscleGain)

	assert.Equal(t, 0, got.Days)
	assert.Equal(t, 0.0, got.WeeklyRate)
	assert.Equal(t, 1.0, got.Absolute)
}

func TestComputeChange_ScanComparisonScenario(t *testing.T) {
	// body-fat midpoints 18% then 21%, ten days apart
	got := domain.ComputeChange(obs(18, 10), obs(21, 0), domain.GoalFatLoss)

	assert.Equal(t, 3.0, got.Absolute)
	assert.Equal(t, 10, got.Days)
	assert.Equal(t, 2.1, got.WeeklyRate)
	assert.Equal(t, domain.GoalDeclining, got.GoalDirection)
}

func TestClassifyDirection_StableBand(t *testing.T) {
	assert.Equal(t, domain.DirectionStable, domain.ClassifyDirection(0.49))
	assert.Equal(t, domain.DirectionStable, domain.ClassifyDirection(-0.49))
	assert.Equal(t, domain.DirectionIncreasing, domain.ClassifyDirection(0.5))
	assert.Equal(t, domain.DirectionDecreasing, domain.ClassifyDirection(-0.5))
}

func TestGoalRelative(t *testing.T) {
	tests := []struct {
		goal domain.Goal
		dir  domain.Direction
		want domain.GoalDirection
	}{
		{domain.GoalFatLoss, domain.DirectionDecreasing, domain.GoalImproving},
		{domain.GoalFatLoss, domain.DirectionIncreasing, domain.GoalDeclining},
		{domain.GoalFatLoss, domain.DirectionStable, domain.GoalSteady},
		{domain.GoalMuscleGain, domain.DirectionIncreasing, domain.GoalImproving},
		{domain.GoalMuscleGain, domain.DirectionDecreasing, domain.GoalDeclining},
		{domain.GoalRecomposition, domain.DirectionDecreasing, domain.GoalNeutral},
		{domain.GoalRecomposition, domain.DirectionIncreasing, domain.GoalNeutral},
		{domain.GoalGeneral, domain.DirectionStable, domain.GoalSteady},
		{domain.GoalGeneral, domain.DirectionDecreasing, domain.GoalNeutral},
		{domain.Goal(""), domain.DirectionIncreasing, domain.GoalNeutral},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, domain.GoalRelative(tc.dir, tc.goal),
			"goal=%s dir=%s", tc.goal, tc.dir)
	}
}
