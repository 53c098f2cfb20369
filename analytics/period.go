package analytics

import (
	"time"

	"trendzo-analytics/models"
)

// allTimeEpoch is the sentinel start date for the "all" period. No
// engagement data predates the platform launch year.
var allTimeEpoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// StartDate maps a period string onto the start of its window relative
// to now. The mapping is total: unknown values behave like "30d".
func StartDate(period string, now time.Time) time.Time {
	switch period {
	case models.Period7d:
		return now.AddDate(0, 0, -7)
	case models.Period90d:
		return now.AddDate(0, 0, -90)
	case models.PeriodAll:
		return allTimeEpoch
	default:
		return now.AddDate(0, 0, -30)
	}
}
