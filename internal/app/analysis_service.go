package app

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"fitsight/internal/domain"
)

var (
	// ErrUnparsableAnalysis indicates the vision provider's reply carried no
	// usable JSON; the scan is not persisted and the photo should be retaken.
	ErrUnparsableAnalysis = errors.New("analysis response not parseable")
	// ErrNotEnoughScans indicates a comparison was requested with fewer than
	// two scans on record.
	ErrNotEnoughScans = errors.New("at least two scans are required")
)

// The original product surfaces recovery/sleep/stress readiness scores next
// to each scan. They were never derived from data, only shipped as fixed
// values, and stay that way here until a real signal source exists.
const (
	placeholderRecoveryScore      = 80
	placeholderSleepScore         = 85
	placeholderStressScore        = 75
	placeholderMetabolicStability = 75
)

// visionProvider is the outbound port to the AI vision service. It returns
// the model's raw free-text reply; parsing is the engine's problem.
type visionProvider interface {
	AnalyzePhoto(ctx context.Context, photoURL, notes string) (string, error)
}

// visionPayload is the loosely-structured blob the model is asked to emit.
type visionPayload struct {
	BodyFatMin   float64  `json:"bodyFatMin"`
	BodyFatMax   float64  `json:"bodyFatMax"`
	Confidence   float64  `json:"confidence"`
	LeanMassMin  float64  `json:"leanMassMin"`
	LeanMassMax  float64  `json:"leanMassMax"`
	Observations []string `json:"observations"`
}

// AnalysisService runs the full body-composition analysis flow: provider
// call, payload sanitization, confidence weighting, safety detection,
// narrative generation and persistence.
type AnalysisService struct {
	scans    domain.ScanRepository
	samples  domain.SampleRepository
	food     domain.FoodLogRepository
	profiles domain.ProfileReader
	vision   visionProvider
	policy   domain.Policy
}

// NewAnalysisService creates an AnalysisService backed by the given ports.
func NewAnalysisService(
	scans domain.ScanRepository,
	samples domain.SampleRepository,
	food domain.FoodLogRepository,
	profiles domain.ProfileReader,
	vision visionProvider,
	policy domain.Policy,
) *AnalysisService {
	return &AnalysisService{
		scans:    scans,
		samples:  samples,
		food:     food,
		profiles: profiles,
		vision:   vision,
		policy:   policy,
	}
}

// ScanRequest identifies the photo to analyze.
type ScanRequest struct {
	PhotoURL string `json:"photoUrl"`
	Notes    string `json:"notes"`
}

// ScanAnalysis is the full derived result returned to the caller.
type ScanAnalysis struct {
	Scan      domain.BodyCompositionScan `json:"scan"`
	Narrative string                     `json:"narrative"`

	// Placeholder readiness scores; see the constants above.
	RecoveryScore      int `json:"recoveryScore"`
	SleepScore         int `json:"sleepScore"`
	StressScore        int `json:"stressScore"`
	MetabolicStability int `json:"metabolicStability"`
}

// AnalyzeScan runs one photo through the provider and the scoring pipeline,
// persists the resulting scan and returns it with its narrative. A reply the
// provider cannot be coaxed into JSON fails with ErrUnparsableAnalysis and
// persists nothing.
func (s *AnalysisService) AnalyzeScan(ctx context.Context, req ScanRequest) (*ScanAnalysis, error) {
	profile, err := s.profiles.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	raw, err := s.vision.AnalyzePhoto(ctx, req.PhotoURL, req.Notes)
	if err != nil {
		return nil, err
	}

	var payload visionPayload
	if err := extractJSON(raw, &payload); err != nil {
		logrus.WithError(err).Warn("vision reply carried no parseable JSON")
		return nil, ErrUnparsableAnalysis
	}

	estimate := domain.SanitizeEstimate(domain.Estimate{
		BodyFatMin:  payload.BodyFatMin,
		BodyFatMax:  payload.BodyFatMax,
		Confidence:  payload.Confidence,
		LeanMassMin: payload.LeanMassMin,
		LeanMassMax: payload.LeanMassMax,
	})

	now := time.Now()

	hasRecentWeight, err := s.hasRecentWeight(ctx, now)
	if err != nil {
		return nil, err
	}
	completeness := domain.DataCompleteness(profile, hasRecentWeight)
	adjusted := domain.AdjustConfidence(int(estimate.Confidence), completeness)

	behavior, err := s.behavioralContext(ctx, now)
	if err != nil {
		return nil, err
	}

	prev, err := s.scans.LatestScan(ctx)
	if err != nil {
		return nil, err
	}

	scan := domain.BodyCompositionScan{
		CapturedAt:         now,
		BodyFatMin:         estimate.BodyFatMin,
		BodyFatMax:         estimate.BodyFatMax,
		BodyFatConfidence:  int(estimate.Confidence),
		AdjustedConfidence: adjusted,
		LeanMassMin:        estimate.LeanMassMin,
		LeanMassMax:        estimate.LeanMassMax,
		DataCompleteness:   completeness,
		Observations:       payload.Observations,
		Context:            behavior,
	}

	rapid, alert := domain.DetectRapidChange(scan.BodyFatMid(), prev, now, s.policy)
	scan.RapidChangeDetected = rapid
	scan.SafetyAlert = alert

	scan.ChangeDirection = domain.GoalSteady
	if prev != nil {
		change := domain.ComputeChange(
			domain.Observation{Value: prev.BodyFatMid(), At: prev.CapturedAt},
			domain.Observation{Value: scan.BodyFatMid(), At: now},
			profile.Goal,
		)
		scan.ChangeDirection = change.GoalDirection
	}

	id, err := s.scans.CreateScan(ctx, &scan)
	if err != nil {
		return nil, err
	}
	scan.ID = id

	logrus.WithFields(logrus.Fields{
		"scanId":     id,
		"bodyFatMid": scan.BodyFatMid(),
		"confidence": adjusted,
		"rapid":      rapid,
	}).Info("scan analyzed")

	return &ScanAnalysis{
		Scan:               scan,
		Narrative:          domain.ScanNarrative(&scan, prev, profile.Goal),
		RecoveryScore:      placeholderRecoveryScore,
		SleepScore:         placeholderSleepScore,
		StressScore:        placeholderStressScore,
		MetabolicStability: placeholderMetabolicStability,
	}, nil
}

// ScanComparison narrates the two most recent scans against each other.
type ScanComparison struct {
	Earlier domain.BodyCompositionScan `json:"earlier"`
	Later   domain.BodyCompositionScan `json:"later"`
	Change  domain.Change              `json:"change"`
	Insight string                     `json:"insight"`
}

// CompareLatest compares the two most recent scans.
func (s *AnalysisService) CompareLatest(ctx context.Context) (*ScanComparison, error) {
	profile, err := s.profiles.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	scans, err := s.scans.ListScans(ctx, 2)
	if err != nil {
		return nil, err
	}
	if len(scans) < 2 {
		return nil, ErrNotEnoughScans
	}

	later, earlier := scans[0], scans[1]
	change := domain.ComputeChange(
		domain.Observation{Value: earlier.BodyFatMid(), At: earlier.CapturedAt},
		domain.Observation{Value: later.BodyFatMid(), At: later.CapturedAt},
		profile.Goal,
	)

	return &ScanComparison{
		Earlier: earlier,
		Later:   later,
		Change:  change,
		Insight: domain.ComparisonInsight(&earlier, &later, profile.Goal),
	}, nil
}

// RecentScans returns up to limit scans, most recent first.
func (s *AnalysisService) RecentScans(ctx context.Context, limit int) ([]domain.BodyCompositionScan, error) {
	return s.scans.ListScans(ctx, limit)
}

// hasRecentWeight reports whether any weight measurement landed within the
// completeness scoring window.
func (s *AnalysisService) hasRecentWeight(ctx context.Context, now time.Time) (bool, error) {
	w := domain.TrailingWindow(now, 7)
	sample, err := s.samples.LatestSampleInRange(ctx, domain.MetricWeight, w.Start, w.End)
	if err != nil {
		return false, err
	}
	return sample != nil, nil
}

// behavioralContext snapshots the last week of nutrition logging.
func (s *AnalysisService) behavioralContext(ctx context.Context, now time.Time) (domain.BehavioralContext, error) {
	w := domain.TrailingWindow(now, 7)
	entries, err := s.food.ListFoodLogEntries(ctx, w.Start, w.End)
	if err != nil {
		return domain.BehavioralContext{}, err
	}

	buckets := domain.DayBuckets(entries)
	if len(buckets) == 0 {
		return domain.BehavioralContext{}, nil
	}

	var calories, protein float64
	for _, b := range buckets {
		calories += b.Calories
		protein += b.Protein
	}
	n := float64(len(buckets))
	return domain.BehavioralContext{
		DaysLogged:       len(buckets),
		AvgDailyCalories: domain.Round1(calories / n),
		AvgDailyProtein:  domain.Round1(protein / n),
	}, nil
}
