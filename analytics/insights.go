package analytics

import (
	"fmt"
	"math"
)

// buildInsights renders the ordered insight statements of a report.
// The order is fixed: sample size, conversion, edit engagement,
// completion, sharing, time engagement. Sample size and conversion
// always emit exactly one statement; the rest emit only when the
// absolute delta exceeds their threshold.
func buildInsights(expert, automated sideStats, expertCount, automatedCount int, th Thresholds) []string {
	insights := []string{
		fmt.Sprintf("Comparison based on %d expert-created and %d automated content samples.",
			expertCount, automatedCount),
	}

	if delta := expert.conversion - automated.conversion; math.Abs(delta) > th.Conversion {
		insights = append(insights, fmt.Sprintf(
			"%s content converts %.1f%% higher (saves per click).",
			higherSide(delta), math.Abs(delta)))
	} else {
		insights = append(insights, fmt.Sprintf(
			"Expert and automated content show similar conversion rates (%.1f%% difference).",
			math.Abs(delta)))
	}

	if delta := expert.viewToEdit - automated.viewToEdit; math.Abs(delta) > th.ViewToEdit {
		insights = append(insights, fmt.Sprintf(
			"Users are more likely to open the editor after viewing %s content (+%.1f%%).",
			lowerCaseSide(delta), math.Abs(delta)))
	}

	if delta := expert.editToSave - automated.editToSave; math.Abs(delta) > th.EditToSave {
		insights = append(insights, fmt.Sprintf(
			"Users are more likely to save after editing %s content (+%.1f%%).",
			lowerCaseSide(delta), math.Abs(delta)))
	}

	if delta := expert.share - automated.share; math.Abs(delta) > th.Share {
		insights = append(insights, fmt.Sprintf(
			"%s content is shared more often (+%.1f%% share rate).",
			higherSide(delta), math.Abs(delta)))
	}

	if delta := expert.avgEngagement - automated.avgEngagement; math.Abs(delta) > th.Engagement {
		insights = append(insights, fmt.Sprintf(
			"%s content holds attention longer (+%.1f seconds average engagement).",
			higherSide(delta), math.Abs(delta)))
	}

	return insights
}

func higherSide(delta float64) string {
	if delta >= 0 {
		return "Expert"
	}
	return "Automated"
}

func lowerCaseSide(delta float64) string {
	if delta >= 0 {
		return "expert"
	}
	return "automated"
}
