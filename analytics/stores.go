// Package analytics implements the content performance pipeline: per-link
// metrics collection, weighted performance scoring and expert-vs-automated
// comparison reports. All storage access goes through the collaborator
// interfaces below so tests can run against in-memory fakes.
package analytics

import (
	"context"
	"errors"
	"time"

	"trendzo-analytics/models"
)

// ErrLinkNotFound is returned by LinkStore when a link id does not resolve.
var ErrLinkNotFound = errors.New("distribution link not found")

// EventFilter selects events of one link from a start date onward.
// Action further narrows editor events by their discriminator.
type EventFilter struct {
	LinkID string
	Since  time.Time
	Action string
}

// LinkStore resolves distribution links.
type LinkStore interface {
	GetLink(ctx context.Context, linkID string) (*models.DistributionLink, error)
}

// EventStore counts raw engagement events.
type EventStore interface {
	CountEvents(ctx context.Context, collection string, f EventFilter) (int64, error)
	// AvgViewDuration returns the mean duration in seconds over view
	// events matching the filter that carry a duration, or nil when
	// none do.
	AvgViewDuration(ctx context.Context, f EventFilter) (*float64, error)
}

// NameStore resolves the display name of a creator or generator.
type NameStore interface {
	GetName(ctx context.Context, id string, source models.SourceType) (string, error)
}

// MetricsStore is the append-only content_metrics audit history.
type MetricsStore interface {
	Append(ctx context.Context, m *models.ContentMetrics) error
	ListSince(ctx context.Context, since time.Time) ([]models.ContentMetrics, error)
}

// ReportStore is the append-only comparison_reports audit history.
type ReportStore interface {
	Append(ctx context.Context, r *models.ComparisonReport) error
}
