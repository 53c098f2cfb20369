package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"trendzo-analytics/logger"
	"trendzo-analytics/models"
)

// Collector produces one immutable ContentMetrics snapshot per call for
// a single distribution link and period.
type Collector struct {
	links   LinkStore
	events  EventStore
	names   NameStore
	metrics MetricsStore
	now     func() time.Time
}

func NewCollector(links LinkStore, events EventStore, names NameStore, metrics MetricsStore) *Collector {
	return &Collector{
		links:   links,
		events:  events,
		names:   names,
		metrics: metrics,
		now:     time.Now,
	}
}

// Calculate aggregates the raw event counts of a link over the period
// into a ContentMetrics snapshot, persists it as an audit row and
// returns the in-memory record.
//
// A nil result means "metrics unavailable" (unknown link or a failed
// event query), never zero metrics. No audit row is written in that
// case. A failed append is logged but does not fail the call.
func (c *Collector) Calculate(ctx context.Context, linkID, originID string, source models.SourceType, period string) (*models.ContentMetrics, error) {
	link, err := c.links.GetLink(ctx, linkID)
	if err != nil {
		logger.ErrorWithFields("metrics calculation failed: link lookup", logger.Fields{
			"operation": "calculate",
			"link_id":   linkID,
			"period":    period,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("get link %s: %w", linkID, err)
	}

	since := StartDate(period, c.now())
	counts, err := c.countWindow(ctx, linkID, since)
	if err != nil {
		logger.ErrorWithFields("metrics calculation failed: event counts", logger.Fields{
			"operation": "calculate",
			"link_id":   linkID,
			"period":    period,
			"error":     err.Error(),
		})
		return nil, err
	}

	name, err := c.names.GetName(ctx, originID, source)
	if err != nil {
		// Non-critical lookup: degrade to a placeholder and keep going.
		logger.WarnWithFields("source name lookup failed, using placeholder", logger.Fields{
			"operation": "calculate",
			"link_id":   linkID,
			"origin_id": originID,
			"error":     err.Error(),
		})
		name = placeholderName(source)
	}

	conversionRate := pct(counts.saves, counts.clicks)

	m := &models.ContentMetrics{
		TemplateID:        link.TemplateID,
		LinkID:            linkID,
		SourceName:        name,
		SourceType:        source,
		Campaign:          link.Campaign,
		Impressions:       counts.clicks,
		Clicks:            counts.clicks,
		Views:             counts.views,
		Edits:             counts.edits,
		Saves:             counts.saves,
		Shares:            counts.shares,
		ConversionRate:    conversionRate,
		ClickToEditRate:   pct(counts.edits, counts.clicks),
		EditToSaveRate:    pct(counts.saves, counts.edits),
		AvgEngagementTime: counts.avgDuration,
		Performance:       models.TierForConversionRate(conversionRate),
		Period:            period,
		CalculatedAt:      c.now().UTC(),
	}
	if source == models.SourceAutomated {
		m.GeneratorID = originID
	} else {
		m.CreatorID = originID
	}

	if err := c.metrics.Append(ctx, m); err != nil {
		logger.ErrorWithFields("failed to append content_metrics audit row", logger.Fields{
			"operation": "calculate",
			"link_id":   linkID,
			"period":    period,
			"error":     err.Error(),
		})
	}

	logger.InfoWithFields("metrics snapshot calculated", logger.Fields{
		"operation":   "calculate",
		"link_id":     linkID,
		"period":      period,
		"source_type": string(source),
		"performance": string(m.Performance),
	})

	return m, nil
}

type windowCounts struct {
	clicks, views, edits, saves, shares int64
	avgDuration                         *float64
}

// countWindow issues the event-store queries for one link/window. The
// queries are independent, so they fan out concurrently and the caller
// waits for all of them; the first error fails the whole window.
func (c *Collector) countWindow(ctx context.Context, linkID string, since time.Time) (windowCounts, error) {
	f := EventFilter{LinkID: linkID, Since: since}
	var counts windowCounts

	var wg sync.WaitGroup
	errs := make([]error, 6)
	run := func(i int, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = fn()
		}()
	}

	run(0, func() (err error) {
		counts.clicks, err = c.events.CountEvents(ctx, models.CollClickEvents, f)
		return
	})
	run(1, func() (err error) {
		counts.views, err = c.events.CountEvents(ctx, models.CollViewEvents, f)
		return
	})
	run(2, func() (err error) {
		ef := f
		ef.Action = models.ActionOpenEditor
		counts.edits, err = c.events.CountEvents(ctx, models.CollEditorEvents, ef)
		return
	})
	run(3, func() (err error) {
		ef := f
		ef.Action = models.ActionSaveTemplate
		counts.saves, err = c.events.CountEvents(ctx, models.CollEditorEvents, ef)
		return
	})
	run(4, func() (err error) {
		counts.shares, err = c.events.CountEvents(ctx, models.CollShareEvents, f)
		return
	})
	run(5, func() (err error) {
		counts.avgDuration, err = c.events.AvgViewDuration(ctx, f)
		return
	})
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return windowCounts{}, fmt.Errorf("count events for link %s: %w", linkID, err)
		}
	}
	return counts, nil
}

func placeholderName(source models.SourceType) string {
	if source == models.SourceAutomated {
		return "Unknown generator"
	}
	return "Unknown expert"
}
