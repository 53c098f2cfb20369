package analytics

import (
	"math"

	"trendzo-analytics/models"
)

// Weights of the four relative rates feeding the performance score.
// Saves weigh heaviest: a save is the strongest signal that the content
// structure worked for the user.
const (
	viewRateWeight  = 0.1
	editRateWeight  = 0.2
	saveRateWeight  = 0.4
	shareRateWeight = 0.3
)

// Score maps a metrics snapshot onto a single comparable value in
// [0,100]. Pure function of the snapshot's counters: recomputing from
// the same snapshot always yields the same score.
//
// Every division is zero-guarded; a link with zero clicks, views or
// edits scores the ungated terms only, never NaN.
func Score(m *models.ContentMetrics) int {
	viewRate := safeDiv(m.Views, m.Clicks)
	editRate := safeDiv(m.Edits, m.Views)
	saveRate := safeDiv(m.Saves, m.Edits)
	shareRate := safeDiv(m.Shares, m.Views)

	raw := viewRate*100*viewRateWeight +
		editRate*100*editRateWeight +
		saveRate*100*saveRateWeight +
		shareRate*100*shareRateWeight

	if raw < 0 {
		raw = 0
	}
	if raw > 100 {
		raw = 100
	}
	return int(math.Round(raw))
}

func safeDiv(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// pct is the percentage form of safeDiv used by the derived rate
// fields; 0 when the denominator is 0.
func pct(num, den int64) float64 {
	return safeDiv(num, den) * 100
}
