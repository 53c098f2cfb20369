package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trendzo-analytics/analytics"
	"trendzo-analytics/models"
)

type stubHistory struct {
	rows []models.ContentMetrics
	err  error
}

func (s *stubHistory) ListByLink(ctx context.Context, linkID string, since time.Time) ([]models.ContentMetrics, error) {
	return s.rows, s.err
}

type stubMetricsStore struct {
	rows []models.ContentMetrics
}

func (s *stubMetricsStore) Append(ctx context.Context, m *models.ContentMetrics) error { return nil }
func (s *stubMetricsStore) ListSince(ctx context.Context, since time.Time) ([]models.ContentMetrics, error) {
	return s.rows, nil
}

type stubReportStore struct {
	latest *models.ComparisonReport
	err    error
}

func (s *stubReportStore) Append(ctx context.Context, r *models.ComparisonReport) error { return nil }
func (s *stubReportStore) LatestByPeriod(ctx context.Context, period string) (*models.ComparisonReport, error) {
	return s.latest, s.err
}

func TestLatestScoreUsesNewestSnapshot(t *testing.T) {
	hist := &stubHistory{rows: []models.ContentMetrics{
		{
			LinkID:       "lnk_1",
			TemplateID:   "tpl_1",
			Clicks:       100,
			Views:        80,
			Edits:        40,
			Saves:        30,
			CalculatedAt: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
		},
		{LinkID: "lnk_1", TemplateID: "tpl_1", Clicks: 10},
	}}
	svc := NewAnalyticsService(nil, nil, hist, nil)

	score, err := svc.LatestScore(context.Background(), "lnk_1", "30d")
	assert.NoError(t, err)
	assert.Equal(t, "lnk_1", score.LinkID)
	assert.Equal(t, "tpl_1", score.TemplateID)
	// 0.1*80 + 0.2*50 + 0.4*75 + 0.3*0 = 48.
	assert.Equal(t, 48, score.Score)
	assert.Equal(t, "30d", score.Period)
}

func TestLatestScoreNoHistory(t *testing.T) {
	svc := NewAnalyticsService(nil, nil, &stubHistory{}, nil)

	score, err := svc.LatestScore(context.Background(), "lnk_1", "30d")
	assert.Nil(t, score)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestLatestScoreHistoryFailure(t *testing.T) {
	svc := NewAnalyticsService(nil, nil, &stubHistory{err: assert.AnError}, nil)

	_, err := svc.LatestScore(context.Background(), "lnk_1", "30d")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestHistoryMapsRowsToDTOs(t *testing.T) {
	hist := &stubHistory{rows: []models.ContentMetrics{
		{LinkID: "lnk_1", SourceType: models.SourceExpert, Performance: models.TierHigh},
		{LinkID: "lnk_1", SourceType: models.SourceAutomated, Performance: models.TierLow},
	}}
	svc := NewAnalyticsService(nil, nil, hist, nil)

	out, err := svc.History(context.Background(), "lnk_1", "7d")
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "expert", out[0].SourceType)
	assert.Equal(t, "high", out[0].Performance)
	assert.Equal(t, "automated", out[1].SourceType)
}

func TestCompareMapsNoDataToError(t *testing.T) {
	agg := analytics.NewAggregator(&stubMetricsStore{}, &stubReportStore{}, analytics.Thresholds{})
	svc := NewAnalyticsService(nil, agg, &stubHistory{}, nil)

	report, err := svc.Compare(context.Background(), "30d")
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestCompareReturnsReportDTO(t *testing.T) {
	metrics := &stubMetricsStore{rows: []models.ContentMetrics{
		{
			TemplateID:   "tpl_1",
			SourceType:   models.SourceExpert,
			Clicks:       100,
			Saves:        30,
			CalculatedAt: time.Now().UTC(),
		},
	}}
	agg := analytics.NewAggregator(metrics, &stubReportStore{}, analytics.Thresholds{})
	svc := NewAnalyticsService(nil, agg, &stubHistory{}, nil)

	report, err := svc.Compare(context.Background(), "30d")
	assert.NoError(t, err)
	assert.Equal(t, 1, report.ExpertCount)
	assert.InDelta(t, 30.0, report.Metrics.ConversionRate.Expert, 1e-9)
}

func TestLatestComparisonReturnsPersistedReport(t *testing.T) {
	reports := &stubReportStore{latest: &models.ComparisonReport{Period: "30d", ExpertCount: 3}}
	svc := NewAnalyticsService(nil, nil, &stubHistory{}, reports)

	report, err := svc.LatestComparison(context.Background(), "30d")
	assert.NoError(t, err)
	assert.Equal(t, "30d", report.Period)
	assert.Equal(t, 3, report.ExpertCount)
}

func TestLatestComparisonNoReport(t *testing.T) {
	svc := NewAnalyticsService(nil, nil, &stubHistory{}, &stubReportStore{})

	report, err := svc.LatestComparison(context.Background(), "30d")
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrNoData)
}
