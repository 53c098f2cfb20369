package analytics

import (
	"context"
	"time"

	"trendzo-analytics/models"
)

type fakeLinkStore struct {
	link *models.DistributionLink
	err  error
}

func (f *fakeLinkStore) GetLink(ctx context.Context, linkID string) (*models.DistributionLink, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.link, nil
}

// fakeEventStore serves counts keyed by "collection/action".
type fakeEventStore struct {
	counts map[string]int64
	avg    *float64
	err    error
}

func (f *fakeEventStore) CountEvents(ctx context.Context, collection string, filter EventFilter) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[collection+"/"+filter.Action], nil
}

func (f *fakeEventStore) AvgViewDuration(ctx context.Context, filter EventFilter) (*float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.avg, nil
}

type fakeNameStore struct {
	name string
	err  error
}

func (f *fakeNameStore) GetName(ctx context.Context, id string, source models.SourceType) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.name, nil
}

type fakeMetricsStore struct {
	appended  []models.ContentMetrics
	rows      []models.ContentMetrics
	appendErr error
	listErr   error
}

func (f *fakeMetricsStore) Append(ctx context.Context, m *models.ContentMetrics) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, *m)
	return nil
}

func (f *fakeMetricsStore) ListSince(ctx context.Context, since time.Time) ([]models.ContentMetrics, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.ContentMetrics
	for _, r := range f.rows {
		if !r.CalculatedAt.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeReportStore struct {
	appended []models.ComparisonReport
	err      error
}

func (f *fakeReportStore) Append(ctx context.Context, r *models.ComparisonReport) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, *r)
	return nil
}
