package domain

import (
	"context"
	"math"
	"time"
)

// Body-fat estimates coming back from the vision model are noisy; everything
// is clamped into these bounds rather than rejected.
const (
	BodyFatFloor   = 5.0
	BodyFatCeiling = 40.0

	ConfidenceFloor   = 30
	ConfidenceCeiling = 95

	fallbackBodyFatMin = 15.0
	fallbackRangeWidth = 3.0
	fallbackConfidence = 60
)

// BehavioralContext is a snapshot of recent logging behavior, captured
// alongside each scan so later interpretation does not depend on the
// food log's retention.
type BehavioralContext struct {
	DaysLogged       int     `json:"daysLogged"`
	AvgDailyCalories float64 `json:"avgDailyCalories"`
	AvgDailyProtein  float64 `json:"avgDailyProtein"`
}

// BodyCompositionScan is one AI-estimated body-composition result.
// Scans are append-only; the history is ordered by CapturedAt.
type BodyCompositionScan struct {
	ID                  int64             `json:"id"`
	CapturedAt          time.Time         `json:"capturedAt"`
	BodyFatMin          float64           `json:"bodyFatMin"`
	BodyFatMax          float64           `json:"bodyFatMax"`
	BodyFatConfidence   int               `json:"bodyFatConfidence"`
	AdjustedConfidence  int               `json:"adjustedConfidence"`
	LeanMassMin         float64           `json:"leanMassMin"`
	LeanMassMax         float64           `json:"leanMassMax"`
	ChangeDirection     GoalDirection     `json:"changeDirection"`
	RapidChangeDetected bool              `json:"rapidChangeDetected"`
	SafetyAlert         string            `json:"safetyAlert,omitempty"`
	DataCompleteness    float64           `json:"dataCompleteness"`
	Observations        []string          `json:"observations,omitempty"`
	Context             BehavioralContext `json:"context"`
}

// BodyFatMid returns the midpoint of the estimated body-fat range.
func (s *BodyCompositionScan) BodyFatMid() float64 {
	return (s.BodyFatMin + s.BodyFatMax) / 2
}

// LeanMassMid returns the midpoint of the estimated lean-mass range.
func (s *BodyCompositionScan) LeanMassMid() float64 {
	return (s.LeanMassMin + s.LeanMassMax) / 2
}

// ScanRepository is the port for scan persistence.
type ScanRepository interface {
	CreateScan(ctx context.Context, s *BodyCompositionScan) (int64, error)
	// LatestScan returns the most recent scan, or nil if none exist.
	LatestScan(ctx context.Context) (*BodyCompositionScan, error)
	// ListScans returns up to limit scans, most recent first.
	ListScans(ctx context.Context, limit int) ([]BodyCompositionScan, error)
}

// Estimate is the raw body-composition estimate as reported by the model,
// before any sanitization.
type Estimate struct {
	BodyFatMin  float64
	BodyFatMax  float64
	Confidence  float64
	LeanMassMin float64
	LeanMassMax float64
}

// SanitizeEstimate clamps a model estimate into policy bounds, substituting
// conservative defaults for missing or nonsensical values. It never produces
// NaN and is idempotent: sanitizing an already-sane estimate changes nothing.
func SanitizeEstimate(e Estimate) Estimate {
	if math.IsNaN(e.BodyFatMin) || e.BodyFatMin <= 0 {
		e.BodyFatMin = fallbackBodyFatMin
	}
	if math.IsNaN(e.BodyFatMax) || e.BodyFatMax <= 0 {
		e.BodyFatMax = e.BodyFatMin + fallbackRangeWidth
	}
	e.BodyFatMin = clampFloat(e.BodyFatMin, BodyFatFloor, BodyFatCeiling)
	e.BodyFatMax = clampFloat(e.BodyFatMax, BodyFatFloor, BodyFatCeiling)
	if e.BodyFatMax < e.BodyFatMin {
		e.BodyFatMax = e.BodyFatMin
	}

	if math.IsNaN(e.Confidence) || e.Confidence <= 0 {
		e.Confidence = fallbackConfidence
	}
	e.Confidence = clampFloat(e.Confidence, ConfidenceFloor, ConfidenceCeiling)

	if math.IsNaN(e.LeanMassMin) || e.LeanMassMin < 0 {
		e.LeanMassMin = 0
	}
	if math.IsNaN(e.LeanMassMax) || e.LeanMassMax < e.LeanMassMin {
		e.LeanMassMax = e.LeanMassMin
	}
	return e
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
