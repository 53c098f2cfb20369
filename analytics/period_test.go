package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		period string
		want   time.Time
	}{
		{"7d", now.AddDate(0, 0, -7)},
		{"30d", now.AddDate(0, 0, -30)},
		{"90d", now.AddDate(0, 0, -90)},
		{"all", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StartDate(tt.period, now), "period %q", tt.period)
	}
}

func TestStartDateUnknownPeriodFallsBackTo30d(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, StartDate("30d", now), StartDate("unknown", now))
	assert.Equal(t, StartDate("30d", now), StartDate("", now))
}
