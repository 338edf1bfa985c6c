package domain

import "math"

// recentWeightBonus is the flat completeness credit for having any weight
// measurement within the scoring window.
const recentWeightBonus = 0.3

// profileFieldWeight is the completeness credit per present profile field.
const profileFieldWeight = 0.2

// DataCompleteness scores how much context is available to calibrate an
// estimate: each present profile field (height, birth date, sex, goal,
// activity level) contributes 0.2 to a profile factor, a recent weight
// measurement adds a flat 0.3, and the sum is normalized by the number of
// contributing factors plus one, clamped to [0,1].
func DataCompleteness(p *UserProfile, hasRecentWeight bool) float64 {
	var score float64
	var factors int

	if p != nil {
		fields := 0
		if p.HeightCm > 0 {
			fields++
		}
		if !p.BirthDate.IsZero() {
			fields++
		}
		if p.Sex != "" {
			fields++
		}
		if p.Goal != "" {
			fields++
		}
		if p.ActivityLevel != "" {
			fields++
		}
		if fields > 0 {
			score += profileFieldWeight * float64(fields)
			factors++
		}
	}

	if hasRecentWeight {
		score += recentWeightBonus
		factors++
	}

	completeness := score / float64(factors+1)
	if completeness < 0 {
		return 0
	}
	if completeness > 1 {
		return 1
	}
	return completeness
}

// AdjustConfidence modulates a model-reported confidence (0-100, already
// sanitized) by data completeness. The 0.7 floor caps the modulation at
// ±15% of the raw value; completeness can never zero out a model's stated
// confidence. Monotonic non-decreasing in completeness, and the result
// always lands in [0.7*raw, raw].
func AdjustConfidence(raw int, completeness float64) int {
	if completeness < 0 {
		completeness = 0
	}
	if completeness > 1 {
		completeness = 1
	}
	return int(math.Round(float64(raw) * (0.7 + completeness*0.3)))
}
