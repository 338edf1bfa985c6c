package domain

import (
	"math"
	"time"
)

// Direction buckets a raw numeric change without goal context.
type Direction string

const (
	DirectionIncreasing Direction = "increasing"
	DirectionDecreasing Direction = "decreasing"
	DirectionStable     Direction = "stable"
)

// GoalDirection interprets a Direction relative to the user's goal: the same
// numeric sign reads as progress for fat loss and regress for muscle gain.
type GoalDirection string

const (
	GoalImproving GoalDirection = "improving"
	GoalDeclining GoalDirection = "declining"
	GoalSteady    GoalDirection = "steady"
	GoalNeutral   GoalDirection = "neutral"
)

// directionStableBand is the absolute change below which movement is noise.
const directionStableBand = 0.5

// goalSignTable maps raw direction to goal-relative meaning. Recomposition
// carries no strict sign mapping and a default goal only credits stability.
var goalSignTable = map[Goal]map[Direction]GoalDirection{
	GoalFatLoss: {
		DirectionDecreasing: GoalImproving,
		DirectionIncreasing: GoalDeclining,
		DirectionStable:     GoalSteady,
	},
	GoalMuscleGain: {
		DirectionIncreasing: GoalImproving,
		DirectionDecreasing: GoalDeclining,
		DirectionStable:     GoalSteady,
	},
	GoalRecomposition: {
		DirectionIncreasing: GoalNeutral,
		DirectionDecreasing: GoalNeutral,
		DirectionStable:     GoalNeutral,
	},
}

// Observation is one dated scalar reading.
type Observation struct {
	Value float64
	At    time.Time
}

// Change is the result of comparing two dated observations.
type Change struct {
	// Absolute is later minus earlier, rounded to one decimal for display.
	Absolute float64 `json:"absolute"`
	// Days is the whole number of days elapsed between the observations.
	Days int `json:"days"`
	// WeeklyRate is the change normalized per week, two decimals; zero when
	// the observations fall on the same day.
	WeeklyRate float64 `json:"weeklyRate"`
	// Direction buckets the un-rounded change.
	Direction Direction `json:"direction"`
	// GoalDirection is Direction read through the goal sign table.
	GoalDirection GoalDirection `json:"goalDirection"`
}

// ComputeChange compares two observations, ordering them by timestamp so the
// result is independent of argument order, and interprets the direction
// relative to goal.
func ComputeChange(a, b Observation, goal Goal) Change {
	earlier, later := a, b
	if later.At.Before(earlier.At) {
		earlier, later = later, earlier
	}

	change := later.Value - earlier.Value
	days := int(later.At.Sub(earlier.At).Seconds() / 86400)

	var weekly float64
	if days > 0 {
		weekly = change / float64(days) * 7
	}

	dir := ClassifyDirection(change)
	return Change{
		Absolute:      Round1(change),
		Days:          days,
		WeeklyRate:    Round2(weekly),
		Direction:     dir,
		GoalDirection: GoalRelative(dir, goal),
	}
}

// ClassifyDirection buckets an un-rounded change against the stable band.
func ClassifyDirection(change float64) Direction {
	switch {
	case math.Abs(change) < directionStableBand:
		return DirectionStable
	case change < 0:
		return DirectionDecreasing
	default:
		return DirectionIncreasing
	}
}

// GoalRelative reads a raw direction through the goal sign table. Goals
// without an entry credit stability and stay neutral on movement.
func GoalRelative(dir Direction, goal Goal) GoalDirection {
	if table, ok := goalSignTable[goal]; ok {
		return table[dir]
	}
	if dir == DirectionStable {
		return GoalSteady
	}
	return GoalNeutral
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
