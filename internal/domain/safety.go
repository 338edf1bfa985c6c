package domain

import "time"

// RapidChangeAdvisory is attached to a scan when consecutive estimates move
// implausibly fast. It is a warning, not an error; the scan is still saved.
const RapidChangeAdvisory = "This change is faster than typically achievable. " +
	"Double-check photo conditions and consider consulting a professional " +
	"before making drastic adjustments."

// DetectRapidChange flags physiologically implausible movement between the
// new body-fat midpoint and the most recent prior scan. With no prior scan
// there is nothing to compare against and no flag is raised.
func DetectRapidChange(newMid float64, prev *BodyCompositionScan, at time.Time, p Policy) (bool, string) {
	if prev == nil {
		return false, ""
	}

	delta := newMid - prev.BodyFatMid()
	if delta < 0 {
		delta = -delta
	}
	days := int(at.Sub(prev.CapturedAt).Hours() / 24)

	if delta > p.RapidChangeDelta && days < p.RapidChangeWindowDays {
		return true, RapidChangeAdvisory
	}
	return false, ""
}
