package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForConversionRate(t *testing.T) {
	cases := []struct {
		rate float64
		want PerformanceTier
	}{
		{25, TierHigh},
		{20, TierHigh},
		{19.999, TierMedium},
		{10, TierMedium},
		{9.999, TierLow},
		{0, TierLow},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TierForConversionRate(tc.rate), "rate %.3f", tc.rate)
	}
}
