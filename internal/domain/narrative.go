package domain

import (
	"fmt"
	"math"
	"strings"
)

// ConfidenceTier words an adjusted confidence score for narration.
func ConfidenceTier(confidence int) string {
	switch {
	case confidence < 50:
		return "low"
	case confidence < 70:
		return "moderate"
	default:
		return "good"
	}
}

// leanMassNoiseBand is the lean-mass change, in kg, below which the
// comparison insight stays silent about it.
const leanMassNoiseBand = 0.3

// notableWeeklyRate is the body-fat weekly rate beyond which the comparison
// insight calls the pace out.
const notableWeeklyRate = 0.5

// ScanNarrative renders a single scan into goal-aware commentary: the
// estimated range with its confidence tier, movement since the previous scan
// when one exists, the model's free-text observations verbatim, and a closing
// clause chosen by goal and current body-fat level.
func ScanNarrative(scan *BodyCompositionScan, prev *BodyCompositionScan, goal Goal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Estimated body fat %.1f-%.1f%% (%s confidence, %d%%).",
		scan.BodyFatMin, scan.BodyFatMax, ConfidenceTier(scan.AdjustedConfidence), scan.AdjustedConfidence)

	if prev != nil {
		delta := scan.BodyFatMid() - prev.BodyFatMid()
		switch ClassifyDirection(delta) {
		case DirectionStable:
			b.WriteString(" Body fat is holding steady since your last scan.")
		case DirectionDecreasing:
			fmt.Fprintf(&b, " Body fat is down %.1f points since your last scan.", math.Abs(delta))
		case DirectionIncreasing:
			fmt.Fprintf(&b, " Body fat is up %.1f points since your last scan.", delta)
		}
	}

	for _, obs := range scan.Observations {
		obs = strings.TrimSpace(obs)
		if obs == "" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(obs)
		if !strings.HasSuffix(obs, ".") {
			b.WriteString(".")
		}
	}

	if clause := goalClosingClause(goal, scan.BodyFatMid()); clause != "" {
		b.WriteString(" ")
		b.WriteString(clause)
	}

	return b.String()
}

// goalClauseRule pairs a goal and body-fat condition with its closing clause,
// so the table is testable apart from the surrounding composition.
type goalClauseRule struct {
	goal    Goal
	matches func(avgBodyFat float64) bool
	clause  string
}

var goalClauseRules = []goalClauseRule{
	{
		goal:    GoalFatLoss,
		matches: func(bf float64) bool { return bf > 25 },
		clause: "Staying consistent with a moderate calorie deficit will keep " +
			"this moving in the right direction.",
	},
	{
		goal:    GoalMuscleGain,
		matches: func(bf float64) bool { return bf < 15 },
		clause: "You are lean enough for a focused muscle-gain phase; a small " +
			"surplus with plenty of protein should serve the goal.",
	},
	{
		goal:    GoalRecomposition,
		matches: func(float64) bool { return true },
		clause: "Recomposition is gradual by nature, so judge progress over " +
			"months rather than individual scans.",
	},
}

func goalClosingClause(goal Goal, avgBodyFat float64) string {
	for _, rule := range goalClauseRules {
		if rule.goal == goal && rule.matches(avgBodyFat) {
			return rule.clause
		}
	}
	return ""
}

// ComparisonInsight narrates the difference between two scans: how long
// apart they were taken, how the body-fat estimate moved, an optional
// lean-mass remark, and an assessment of the weekly pace.
func ComparisonInsight(earlier, later *BodyCompositionScan, goal Goal) string {
	change := ComputeChange(
		Observation{Value: earlier.BodyFatMid(), At: earlier.CapturedAt},
		Observation{Value: later.BodyFatMid(), At: later.CapturedAt},
		goal,
	)

	var b strings.Builder
	fmt.Fprintf(&b, "Comparing scans taken %s apart.", elapsedPhrase(change.Days))

	rawDelta := later.BodyFatMid() - earlier.BodyFatMid()
	switch ClassifyDirection(rawDelta) {
	case DirectionStable:
		b.WriteString(" Body fat looks stable between the two.")
	case DirectionDecreasing:
		fmt.Fprintf(&b, " Body fat decreased by %.1f points.", math.Abs(rawDelta))
	case DirectionIncreasing:
		fmt.Fprintf(&b, " Body fat increased by %.1f points.", rawDelta)
	}

	leanDelta := later.LeanMassMid() - earlier.LeanMassMid()
	if math.Abs(leanDelta) > leanMassNoiseBand {
		if leanDelta > 0 {
			fmt.Fprintf(&b, " Lean mass is up an estimated %.1f kg.", leanDelta)
		} else {
			fmt.Fprintf(&b, " Lean mass is down an estimated %.1f kg.", math.Abs(leanDelta))
		}
	}

	if math.Abs(change.WeeklyRate) > notableWeeklyRate {
		fmt.Fprintf(&b, " That is a notable pace of %.2f points per week.", math.Abs(change.WeeklyRate))
		if change.WeeklyRate < -notableWeeklyRate {
			b.WriteString(" Losses this fast often cost muscle; make sure " +
				"calorie intake and protein are not too low.")
		}
	}

	return b.String()
}

// elapsedPhrase words an elapsed-day count: days under a week, weeks under a
// month, months beyond (pluralized from two months on).
func elapsedPhrase(days int) string {
	switch {
	case days < 7:
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	case days < 30:
		weeks := days / 7
		if weeks == 1 {
			return "1 week"
		}
		return fmt.Sprintf("%d weeks", weeks)
	case days < 60:
		return "1 month"
	default:
		return fmt.Sprintf("%d months", days/30)
	}
}
