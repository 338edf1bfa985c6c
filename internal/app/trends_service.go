package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitsight/internal/domain"
)

// ErrProfileNotFound indicates that no user profile has been set up yet.
var ErrProfileNotFound = errors.New("user profile not found")

// TrendsService derives trend classifications and change figures from the
// sample history, interpreted against the user's goal.
type TrendsService struct {
	samples  domain.SampleRepository
	profiles domain.ProfileReader
	policy   domain.Policy
}

// NewTrendsService creates a TrendsService backed by the given ports.
func NewTrendsService(samples domain.SampleRepository, profiles domain.ProfileReader, policy domain.Policy) *TrendsService {
	return &TrendsService{samples: samples, profiles: profiles, policy: policy}
}

// MetricTrend is the derived view of one metric over a window.
type MetricTrend struct {
	Metric domain.MetricType `json:"metric"`
	Window domain.Window     `json:"window"`
	Points int               `json:"points"`
	Trend  domain.Trend      `json:"trend"`
	// Change compares the earliest and latest samples in the window;
	// nil when the window holds fewer than two points.
	Change  *domain.Change `json:"change,omitempty"`
	Summary string         `json:"summary"`
}

// MetricTrend classifies one metric's direction over the trailing days days
// and computes its change figures. An empty or single-point window degrades
// to a stable trend with no change, never an error.
func (s *TrendsService) MetricTrend(ctx context.Context, metric domain.MetricType, days int) (*MetricTrend, error) {
	if !domain.KnownMetric(metric) {
		return nil, fmt.Errorf("unknown metric type %q", metric)
	}

	profile, err := s.profiles.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	w := domain.TrailingWindow(time.Now(), days)
	samples, err := s.samples.ListSamples(ctx, metric, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	series := domain.FilterWindow(samples, w)

	result := &MetricTrend{
		Metric: metric,
		Window: w,
		Points: len(series),
		Trend:  domain.ClassifyTrend(domain.Values(series), s.policy.TrendThreshold),
	}

	if len(series) >= 2 {
		first, last := series[0], series[len(series)-1]
		change := domain.ComputeChange(
			domain.Observation{Value: first.Value, At: first.CapturedAt},
			domain.Observation{Value: last.Value, At: last.CapturedAt},
			profile.Goal,
		)
		result.Change = &change
	}

	result.Summary = trendSummary(metric, result)
	return result, nil
}

// LatestDelta compares the two most recent samples of one metric within the
// trailing 30 days, read against the user's goal. Returns nil when fewer than
// two samples exist.
func (s *TrendsService) LatestDelta(ctx context.Context, metric domain.MetricType) (*domain.Change, error) {
	if !domain.KnownMetric(metric) {
		return nil, fmt.Errorf("unknown metric type %q", metric)
	}

	profile, err := s.profiles.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	w := domain.TrailingWindow(time.Now(), 30)
	samples, err := s.samples.ListSamples(ctx, metric, w.Start, w.End)
	if err != nil {
		return nil, err
	}

	prev, last := domain.LastTwo(domain.FilterWindow(samples, w))
	if prev == nil || last == nil {
		return nil, nil
	}

	change := domain.ComputeChange(
		domain.Observation{Value: prev.Value, At: prev.CapturedAt},
		domain.Observation{Value: last.Value, At: last.CapturedAt},
		profile.Goal,
	)
	return &change, nil
}

// WeekOverWeek classifies the last seven days of one metric against the
// seven days before them.
func (s *TrendsService) WeekOverWeek(ctx context.Context, metric domain.MetricType) (domain.Trend, error) {
	if !domain.KnownMetric(metric) {
		return domain.TrendStable, fmt.Errorf("unknown metric type %q", metric)
	}

	now := time.Now()
	samples, err := s.samples.ListSamples(ctx, metric, now.AddDate(0, 0, -14), now)
	if err != nil {
		return domain.TrendStable, err
	}

	cutoff := now.AddDate(0, 0, -7)
	var previous, current []float64
	for _, sample := range samples {
		if sample.CapturedAt.Before(cutoff) {
			previous = append(previous, sample.Value)
		} else {
			current = append(current, sample.Value)
		}
	}

	return domain.CompareWindows(previous, current, s.policy.TrendThreshold), nil
}

func trendSummary(metric domain.MetricType, t *MetricTrend) string {
	if t.Points < 2 {
		return fmt.Sprintf("Not enough %s data in this window to call a trend.", metric)
	}

	direction := "holding steady"
	switch t.Trend {
	case domain.TrendUp:
		direction = "trending up"
	case domain.TrendDown:
		direction = "trending down"
	}

	windowDays := int(t.Window.End.Sub(t.Window.Start).Hours() / 24)
	summary := fmt.Sprintf("%s is %s over the last %d days", metric, direction, windowDays)
	if t.Change != nil && t.Change.Days > 0 {
		summary += fmt.Sprintf(" (%.1f total, %.2f per week)", t.Change.Absolute, t.Change.WeeklyRate)
	}
	summary += "."

	if t.Change != nil {
		switch t.Change.GoalDirection {
		case domain.GoalImproving:
			summary += " That lines up well with your goal."
		case domain.GoalDeclining:
			summary += " That runs against your goal; worth a closer look."
		}
	}
	return summary
}
