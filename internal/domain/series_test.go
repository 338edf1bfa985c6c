package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitsight/internal/domain"
)

func sampleAt(value float64, at time.Time) domain.Sample {
	return domain.Sample{Type: domain.MetricWeight, Value: value, Unit: "kg", CapturedAt: at}
}

func TestFilterWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	w := domain.TrailingWindow(now, 14)

	samples := []domain.Sample{
		sampleAt(81, now.AddDate(0, 0, -20)),
		sampleAt(79, now.AddDate(0, 0, -7)), // deliberately out of order
		sampleAt(80, now.AddDate(0, 0, -14)),
		sampleAt(78, now.AddDate(0, 0, -1)),
		sampleAt(77, now), // window end is exclusive
	}

	got := domain.FilterWindow(samples, w)
	require.Len(t, got, 3)
	assert.Equal(t, []float64{80, 79, 78}, domain.Values(got))
}

func TestFilterWindow_Empty(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	got := domain.FilterWindow(nil, domain.TrailingWindow(now, 30))

	assert.Empty(t, got)
	assert.Empty(t, domain.Values(got))
}

func TestLastTwo(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	series := []domain.Sample{
		sampleAt(80, now.AddDate(0, 0, -2)),
		sampleAt(79, now.AddDate(0, 0, -1)),
		sampleAt(78, now),
	}

	prev, last := domain.LastTwo(series)
	require.NotNil(t, prev)
	require.NotNil(t, last)
	assert.Equal(t, 79.0, prev.Value)
	assert.Equal(t, 78.0, last.Value)

	prev, last = domain.LastTwo(series[:1])
	assert.Nil(t, prev)
	require.NotNil(t, last)

	prev, last = domain.LastTwo(nil)
	assert.Nil(t, prev)
	assert.Nil(t, last)
}

func TestDayBuckets(t *testing.T) {
	day1 := time.Date(2025, 6, 10, 8, 0, 0, 0, time.Local)
	day2 := time.Date(2025, 6, 11, 19, 30, 0, 0, time.Local)

	entries := []domain.FoodLogEntry{
		{Calories: 500, Protein: 40, Carbs: 50, Fat: 12, LoggedAt: day1},
		{Calories: 700, Protein: 35, Carbs: 80, Fat: 20, LoggedAt: day1.Add(6 * time.Hour)},
		{Calories: 600, Protein: 45, Carbs: 60, Fat: 15, LoggedAt: day2},
	}

	got := domain.DayBuckets(entries)
	require.Len(t, got, 2)

	assert.Equal(t, "2025-06-10", got[0].Day)
	assert.Equal(t, 1200.0, got[0].Calories)
	assert.Equal(t, 75.0, got[0].Protein)
	assert.Equal(t, 2, got[0].Entries)

	assert.Equal(t, "2025-06-11", got[1].Day)
	assert.Equal(t, 600.0, got[1].Calories)
}

func TestDayBuckets_Empty(t *testing.T) {
	assert.Empty(t, domain.DayBuckets(nil))
}

func TestMonthBuckets(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	buckets := domain.MonthBuckets(now)

	require.Len(t, buckets, 12)
	assert.Equal(t, now.AddDate(0, 0, -360), buckets[0].Start)
	assert.Equal(t, now, buckets[11].End)

	for i := 1; i < len(buckets); i++ {
		// oldest first, contiguous and non-overlapping
		assert.Equal(t, buckets[i-1].End, buckets[i].Start)
		assert.True(t, buckets[i-1].Start.Before(buckets[i].Start))
	}
}
