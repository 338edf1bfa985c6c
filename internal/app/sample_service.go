// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitsight/internal/domain"
)

// SampleService encapsulates measurement-logging use cases.
type SampleService struct {
	repo domain.SampleRepository
}

// NewSampleService creates a SampleService backed by the given repository.
func NewSampleService(repo domain.SampleRepository) *SampleService {
	return &SampleService{repo: repo}
}

// Record validates and stores a new measurement. Weight values arriving in
// pounds are normalized to kilograms before persistence.
func (s *SampleService) Record(ctx context.Context, sample domain.Sample) (int64, error) {
	if !domain.KnownMetric(sample.Type) {
		return 0, fmt.Errorf("unknown metric type %q", sample.Type)
	}
	if sample.Value <= 0 {
		return 0, errors.New("value must be > 0")
	}
	if sample.Type == domain.MetricWeight && sample.Unit == "lb" {
		sample.Value = domain.ConvertWeight(sample.Value, "lb", "kg")
		sample.Unit = "kg"
	}
	if sample.CapturedAt.IsZero() {
		sample.CapturedAt = time.Now()
	}
	if sample.Source == "" {
		sample.Source = domain.SourceManual
	}
	return s.repo.AddSample(ctx, sample)
}

// List returns the samples of one metric over the trailing days days,
// ascending by capture time.
func (s *SampleService) List(ctx context.Context, t domain.MetricType, days int) ([]domain.Sample, error) {
	if !domain.KnownMetric(t) {
		return nil, fmt.Errorf("unknown metric type %q", t)
	}
	w := domain.TrailingWindow(time.Now(), days)
	return s.repo.ListSamples(ctx, t, w.Start, w.End)
}

// Latest returns the most recent sample of one metric, or nil.
func (s *SampleService) Latest(ctx context.Context, t domain.MetricType) (*domain.Sample, error) {
	if !domain.KnownMetric(t) {
		return nil, fmt.Errorf("unknown metric type %q", t)
	}
	return s.repo.LatestSample(ctx, t)
}
