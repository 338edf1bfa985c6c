package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"fitsight/internal/domain"
)

// EvolutionService builds the longitudinal monthly timeline used for
// charting. No trend logic is applied at this layer; consumers classify the
// resulting series themselves if they need a direction.
type EvolutionService struct {
	samples domain.SampleRepository
}

// NewEvolutionService creates an EvolutionService backed by the given repository.
func NewEvolutionService(samples domain.SampleRepository) *EvolutionService {
	return &EvolutionService{samples: samples}
}

// MonthEntry carries the latest-known value per metric within one ~30-day
// bucket. A nil value means no sample landed in the bucket, which is distinct
// from zero.
type MonthEntry struct {
	Window   domain.Window `json:"window"`
	Weight   *float64      `json:"weight"`
	BodyFat  *float64      `json:"bodyFat"`
	LeanMass *float64      `json:"leanMass"`
}

// evolutionMetrics are the state quantities tracked on the timeline.
var evolutionMetrics = []domain.MetricType{
	domain.MetricWeight,
	domain.MetricBodyFat,
	domain.MetricLeanMass,
}

// Timeline returns exactly twelve month entries, oldest first, covering the
// trailing ~360 days. The per-bucket lookups are independent read-only
// fetches, so they run concurrently and join before assembly; any failed
// fetch fails the whole call.
func (s *EvolutionService) Timeline(ctx context.Context) ([]MonthEntry, error) {
	buckets := domain.MonthBuckets(time.Now())
	entries := make([]MonthEntry, len(buckets))

	g, gctx := errgroup.WithContext(ctx)
	for i, bucket := range buckets {
		i, bucket := i, bucket
		entries[i].Window = bucket
		for _, metric := range evolutionMetrics {
			metric := metric
			g.Go(func() error {
				sample, err := s.samples.LatestSampleInRange(gctx, metric, bucket.Start, bucket.End)
				if err != nil {
					return err
				}
				if sample != nil {
					v := sample.Value
					switch metric {
					case domain.MetricWeight:
						entries[i].Weight = &v
					case domain.MetricBodyFat:
						entries[i].BodyFat = &v
					case domain.MetricLeanMass:
						entries[i].LeanMass = &v
					}
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
