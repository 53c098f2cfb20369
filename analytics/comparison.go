package analytics

import (
	"fmt"
	"sort"
	"time"

	"context"

	"trendzo-analytics/logger"
	"trendzo-analytics/models"
)

// Thresholds are the minimum absolute deltas for emitting comparison
// insights. Conversion, view-to-edit, edit-to-save and share are in
// percentage points; engagement is in seconds.
type Thresholds struct {
	Conversion float64
	ViewToEdit float64
	EditToSave float64
	Share      float64
	Engagement float64
}

// DefaultThresholds are the product defaults. Share is deliberately
// tighter than the rate thresholds, engagement looser.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Conversion: 5,
		ViewToEdit: 5,
		EditToSave: 5,
		Share:      3,
		Engagement: 10,
	}
}

// Aggregator folds content_metrics audit rows into expert-vs-automated
// comparison reports.
type Aggregator struct {
	metrics    MetricsStore
	reports    ReportStore
	thresholds Thresholds
	now        func() time.Time
}

func NewAggregator(metrics MetricsStore, reports ReportStore, th Thresholds) *Aggregator {
	def := DefaultThresholds()
	if th.Conversion <= 0 {
		th.Conversion = def.Conversion
	}
	if th.ViewToEdit <= 0 {
		th.ViewToEdit = def.ViewToEdit
	}
	if th.EditToSave <= 0 {
		th.EditToSave = def.EditToSave
	}
	if th.Share <= 0 {
		th.Share = def.Share
	}
	if th.Engagement <= 0 {
		th.Engagement = def.Engagement
	}
	return &Aggregator{
		metrics:    metrics,
		reports:    reports,
		thresholds: th,
		now:        time.Now,
	}
}

// Compare builds one ComparisonReport from every metrics snapshot whose
// calculatedAt falls inside the period, persists it as an audit row and
// returns it. A (nil, nil) result means no data for the period, which
// is a defined outcome, not an error. Concurrent calls are independent:
// each appends its own row, nothing is mutated.
func (a *Aggregator) Compare(ctx context.Context, period string) (*models.ComparisonReport, error) {
	since := StartDate(period, a.now())
	rows, err := a.metrics.ListSince(ctx, since)
	if err != nil {
		logger.ErrorWithFields("comparison failed: metrics history query", logger.Fields{
			"operation": "compare",
			"period":    period,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("list metrics since %s: %w", since.Format(time.RFC3339), err)
	}

	var expertRows, automatedRows []models.ContentMetrics
	for _, r := range rows {
		if r.SourceType == models.SourceAutomated {
			automatedRows = append(automatedRows, r)
		} else {
			expertRows = append(expertRows, r)
		}
	}

	if len(expertRows) == 0 && len(automatedRows) == 0 {
		return nil, nil
	}

	expert := aggregateSide(expertRows)
	automated := aggregateSide(automatedRows)

	report := &models.ComparisonReport{
		Period:         period,
		ExpertCount:    len(expertRows),
		AutomatedCount: len(automatedRows),
		Metrics: models.ComparisonMetrics{
			ClickRate:         triple(expert.clickRate, automated.clickRate),
			ViewToEditRate:    triple(expert.viewToEdit, automated.viewToEdit),
			EditToSaveRate:    triple(expert.editToSave, automated.editToSave),
			ConversionRate:    triple(expert.conversion, automated.conversion),
			ShareRate:         triple(expert.share, automated.share),
			AvgEngagementTime: triple(expert.avgEngagement, automated.avgEngagement),
		},
		TopPerformers: models.TopPerformers{
			Expert:    topFive(expertRows),
			Automated: topFive(automatedRows),
		},
		InsightSummary: buildInsights(expert, automated, len(expertRows), len(automatedRows), a.thresholds),
		GeneratedAt:    a.now().UTC(),
	}

	if err := a.reports.Append(ctx, report); err != nil {
		logger.ErrorWithFields("failed to append comparison_reports audit row", logger.Fields{
			"operation": "compare",
			"period":    period,
			"error":     err.Error(),
		})
	}

	return report, nil
}

// sideStats are the aggregate metrics of one source type. The five
// rates come from summed counters across the whole set, not from
// averaging per-record rates.
type sideStats struct {
	clickRate     float64
	viewToEdit    float64
	editToSave    float64
	conversion    float64
	share         float64
	avgEngagement float64
}

func aggregateSide(rows []models.ContentMetrics) sideStats {
	var clicks, views, edits, saves, shares int64
	var durSum float64
	var durCount int
	for _, r := range rows {
		clicks += r.Clicks
		views += r.Views
		edits += r.Edits
		saves += r.Saves
		shares += r.Shares
		// Records without an engagement time stay out of both the
		// numerator and the denominator of the mean.
		if r.AvgEngagementTime != nil {
			durSum += *r.AvgEngagementTime
			durCount++
		}
	}

	s := sideStats{
		clickRate:  pct(views, clicks),
		viewToEdit: pct(edits, views),
		editToSave: pct(saves, edits),
		conversion: pct(saves, clicks),
		share:      pct(shares, views),
	}
	if durCount > 0 {
		s.avgEngagement = durSum / float64(durCount)
	}
	return s
}

func triple(expert, automated float64) models.MetricComparison {
	return models.MetricComparison{
		Expert:    expert,
		Automated: automated,
		Delta:     expert - automated,
	}
}

// topFive scores every row and returns the top 5 by score, descending.
func topFive(rows []models.ContentMetrics) []models.TopPerformer {
	performers := make([]models.TopPerformer, 0, len(rows))
	for i := range rows {
		performers = append(performers, models.TopPerformer{
			TemplateID: rows[i].TemplateID,
			Score:      Score(&rows[i]),
			Campaign:   rows[i].Campaign,
		})
	}
	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].Score > performers[j].Score
	})
	if len(performers) > 5 {
		performers = performers[:5]
	}
	return performers
}
