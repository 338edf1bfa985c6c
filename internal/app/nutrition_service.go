package app

import (
	"context"
	"errors"
	"time"

	"fitsight/internal/domain"
)

// NutritionService encapsulates food-logging use cases.
type NutritionService struct {
	repo   domain.FoodLogRepository
	policy domain.Policy
}

// NewNutritionService creates a NutritionService backed by the given repository.
func NewNutritionService(repo domain.FoodLogRepository, policy domain.Policy) *NutritionService {
	return &NutritionService{repo: repo, policy: policy}
}

// Log validates and stores a food-log entry.
func (s *NutritionService) Log(ctx context.Context, e domain.FoodLogEntry) (int64, error) {
	if e.Calories < 0 || e.Protein < 0 || e.Carbs < 0 || e.Fat < 0 {
		return 0, errors.New("nutrition values must be >= 0")
	}
	if e.Calories == 0 && e.Protein == 0 && e.Carbs == 0 && e.Fat == 0 {
		return 0, errors.New("entry must carry at least one non-zero value")
	}
	if e.LoggedAt.IsZero() {
		e.LoggedAt = time.Now()
	}
	return s.repo.AddFoodLogEntry(ctx, e)
}

// Delete removes a food-log entry.
func (s *NutritionService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteFoodLogEntry(ctx, id)
}

// Daily returns per-day calorie and macro totals over the trailing days days,
// oldest day first. Days without entries are simply absent.
func (s *NutritionService) Daily(ctx context.Context, days int) ([]domain.DayTotals, error) {
	w := domain.TrailingWindow(time.Now(), days)
	entries, err := s.repo.ListFoodLogEntries(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	return domain.DayBuckets(entries), nil
}

// CalorieTrend compares this week's daily calorie totals against the week
// before. Missing days leave their window short rather than counting as zero.
func (s *NutritionService) CalorieTrend(ctx context.Context) (domain.Trend, error) {
	now := time.Now()
	entries, err := s.repo.ListFoodLogEntries(ctx, now.AddDate(0, 0, -14), now)
	if err != nil {
		return domain.TrendStable, err
	}

	cutoff := now.AddDate(0, 0, -7)
	var previous, current []domain.FoodLogEntry
	for _, e := range entries {
		if e.LoggedAt.Before(cutoff) {
			previous = append(previous, e)
		} else {
			current = append(current, e)
		}
	}

	return domain.CompareWindows(
		dailyCalories(previous), dailyCalories(current), s.policy.TrendThreshold), nil
}

func dailyCalories(entries []domain.FoodLogEntry) []float64 {
	buckets := domain.DayBuckets(entries)
	vals := make([]float64, len(buckets))
	for i, b := range buckets {
		vals[i] = b.Calories
	}
	return vals
}
