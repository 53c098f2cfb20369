package services

import (
	"context"
	"errors"
	"time"

	"trendzo-analytics/analytics"
	"trendzo-analytics/dto"
	"trendzo-analytics/models"
)

// ErrNoData marks a valid "nothing to report" outcome, distinct from a
// collaborator failure.
var ErrNoData = errors.New("no analytics data for period")

// MetricsHistory is the slice of the metrics repository the service
// needs beyond the analytics.MetricsStore interface.
type MetricsHistory interface {
	ListByLink(ctx context.Context, linkID string, since time.Time) ([]models.ContentMetrics, error)
}

// ReportHistory reads back persisted comparison reports.
type ReportHistory interface {
	LatestByPeriod(ctx context.Context, period string) (*models.ComparisonReport, error)
}

// AnalyticsService wires the pipeline components behind the HTTP API
// and maps results onto DTOs.
type AnalyticsService struct {
	collector  *analytics.Collector
	aggregator *analytics.Aggregator
	history    MetricsHistory
	reports    ReportHistory
	now        func() time.Time
}

func NewAnalyticsService(collector *analytics.Collector, aggregator *analytics.Aggregator, history MetricsHistory, reports ReportHistory) *AnalyticsService {
	return &AnalyticsService{
		collector:  collector,
		aggregator: aggregator,
		history:    history,
		reports:    reports,
		now:        time.Now,
	}
}

// CalculateMetrics snapshots the metrics of one link for the requested
// period. Unknown links surface as analytics.ErrLinkNotFound.
func (s *AnalyticsService) CalculateMetrics(ctx context.Context, linkID string, in dto.CalculateMetricsRequest) (*dto.ContentMetricsDTO, error) {
	source := models.SourceType(in.SourceType)
	originID := in.CreatorID
	if source == models.SourceAutomated {
		originID = in.GeneratorID
	}

	m, err := s.collector.Calculate(ctx, linkID, originID, source, in.Period)
	if err != nil {
		return nil, err
	}
	d := dto.NewContentMetricsDTO(*m)
	return &d, nil
}

// History returns the audit snapshots of a link within the period,
// newest first.
func (s *AnalyticsService) History(ctx context.Context, linkID, period string) ([]dto.ContentMetricsDTO, error) {
	since := analytics.StartDate(period, s.now())
	rows, err := s.history.ListByLink(ctx, linkID, since)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContentMetricsDTO, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.NewContentMetricsDTO(m))
	}
	return out, nil
}

// LatestScore scores the most recent snapshot of a link. ErrNoData when
// the link has no snapshot in the period.
func (s *AnalyticsService) LatestScore(ctx context.Context, linkID, period string) (*dto.ScoreDTO, error) {
	since := analytics.StartDate(period, s.now())
	rows, err := s.history.ListByLink(ctx, linkID, since)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	latest := rows[0]
	return &dto.ScoreDTO{
		LinkID:       latest.LinkID,
		TemplateID:   latest.TemplateID,
		Score:        analytics.Score(&latest),
		Period:       period,
		CalculatedAt: latest.CalculatedAt,
	}, nil
}

// Compare produces the expert-vs-automated report for a period.
// ErrNoData when no snapshot exists on either side.
func (s *AnalyticsService) Compare(ctx context.Context, period string) (*dto.ComparisonReportDTO, error) {
	report, err := s.aggregator.Compare(ctx, period)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrNoData
	}
	d := dto.NewComparisonReportDTO(*report)
	return &d, nil
}

// LatestComparison returns the most recently persisted report for a
// period without regenerating it. ErrNoData when none exists.
func (s *AnalyticsService) LatestComparison(ctx context.Context, period string) (*dto.ComparisonReportDTO, error) {
	report, err := s.reports.LatestByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrNoData
	}
	d := dto.NewComparisonReportDTO(*report)
	return &d, nil
}
