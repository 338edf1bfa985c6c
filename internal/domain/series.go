package domain

import (
	"sort"
	"time"
)

// Window is a half-open time range [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// TrailingWindow returns the window covering the last days days up to now.
func TrailingWindow(now time.Time, days int) Window {
	return Window{Start: now.AddDate(0, 0, -days), End: now}
}

// FilterWindow returns the samples falling inside w, ascending by CapturedAt.
// An empty result means "insufficient data"; callers must not divide by the
// length without checking it.
func FilterWindow(samples []Sample, w Window) []Sample {
	out := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if w.Contains(s.CapturedAt) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CapturedAt.Before(out[j].CapturedAt)
	})
	return out
}

// Values extracts the sample values in order.
func Values(samples []Sample) []float64 {
	vals := make([]float64, len(samples))
	for i, s := range samples {
		vals[i] = s.Value
	}
	return vals
}

// LastTwo returns the two most recent samples of an ascending series.
// Either pointer is nil when the series is too short.
func LastTwo(samples []Sample) (prev, last *Sample) {
	switch n := len(samples); {
	case n >= 2:
		return &samples[n-2], &samples[n-1]
	case n == 1:
		return nil, &samples[0]
	default:
		return nil, nil
	}
}

// localDay formats t as a calendar date in the local frame, which is the
// day-bucket key for all flow quantities.
func localDay(t time.Time) string {
	return t.In(time.Local).Format("2006-01-02")
}

// DayBuckets sums food-log entries per local calendar day, oldest day first.
func DayBuckets(entries []FoodLogEntry) []DayTotals {
	byDay := make(map[string]*DayTotals)
	for _, e := range entries {
		day := localDay(e.LoggedAt)
		t, ok := byDay[day]
		if !ok {
			t = &DayTotals{Day: day}
			byDay[day] = t
		}
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fat += e.Fat
		t.Entries++
	}

	out := make([]DayTotals, 0, len(byDay))
	for _, t := range byDay {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// evolutionMonths is the number of ~30-day buckets in the timeline.
const evolutionMonths = 12

// MonthBuckets partitions the trailing ~360 days before now into 12
// non-overlapping 30-day windows, oldest first.
func MonthBuckets(now time.Time) []Window {
	buckets := make([]Window, 0, evolutionMonths)
	for i := evolutionMonths; i >= 1; i-- {
		buckets = append(buckets, Window{
			Start: now.AddDate(0, 0, -30*i),
			End:   now.AddDate(0, 0, -30*(i-1)),
		})
	}
	return buckets
}
