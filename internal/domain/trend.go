package domain

// Trend classifies a metric's recent direction.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// trendEpsilon guards the percent-change division against zero or negative
// baselines.
const trendEpsilon = 0.001

// ClassifyTrend splits an ordered series into halves (the middle element of
// an odd-length series belongs to the second half), compares the half means,
// and buckets the relative change against threshold. Fewer than two points
// always classify as stable.
func ClassifyTrend(values []float64, threshold float64) Trend {
	if len(values) < 2 {
		return TrendStable
	}
	mid := len(values) / 2
	return CompareWindows(values[:mid], values[mid:], threshold)
}

// CompareWindows applies the mean-ratio-threshold primitive to two explicit
// windows, e.g. the last seven days against the seven before them. Either
// window being empty classifies as stable.
func CompareWindows(previous, current []float64, threshold float64) Trend {
	if len(previous) == 0 || len(current) == 0 {
		return TrendStable
	}
	prevMean := mean(previous)
	curMean := mean(current)

	base := prevMean
	if base < trendEpsilon {
		base = trendEpsilon
	}
	change := (curMean - prevMean) / base

	switch {
	case change > threshold:
		return TrendUp
	case change < -threshold:
		return TrendDown
	default:
		return TrendStable
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
