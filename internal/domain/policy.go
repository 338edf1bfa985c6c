package domain

// Policy holds the tunable analysis thresholds. The defaults encode product
// policy, not physiology, so they are configurable rather than constants.
type Policy struct {
	// TrendThreshold is the relative change beyond which a series is
	// classified as moving (e.g. 0.01 for 1%).
	TrendThreshold float64
	// RapidChangeDelta is the body-fat midpoint change, in percentage
	// points, beyond which back-to-back scans look implausible.
	RapidChangeDelta float64
	// RapidChangeWindowDays bounds how close together two scans must be
	// for RapidChangeDelta to apply.
	RapidChangeWindowDays int
}

// DefaultPolicy returns the shipped analysis thresholds.
func DefaultPolicy() Policy {
	return Policy{
		TrendThreshold:        0.01,
		RapidChangeDelta:      2.0,
		RapidChangeWindowDays: 14,
	}
}
