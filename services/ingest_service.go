package services

import (
	"context"
	"fmt"
	"time"

	"trendzo-analytics/events"
	"trendzo-analytics/models"
)

// EventSink is the write side of the raw event store.
type EventSink interface {
	Insert(ctx context.Context, collection string, ev *models.EngagementEvent) error
}

// IngestService routes engagement events from the bus into the event
// collections the metrics pipeline counts against.
type IngestService struct {
	events EventSink
}

func NewIngestService(sink EventSink) *IngestService {
	return &IngestService{events: sink}
}

// Record validates one engagement event and lands it in its collection.
// Validation errors are returned to the bus so the event goes through
// the retry/DLQ path instead of being silently dropped.
func (s *IngestService) Record(ctx context.Context, e events.EngagementRecordedEvent) error {
	if e.LinkID == "" {
		return fmt.Errorf("engagement event %s has no link_id", e.ID)
	}

	collection, action := models.CollectionFor(e.Engagement)
	if collection == "" {
		return fmt.Errorf("engagement event %s has unknown type %q", e.ID, e.Engagement)
	}

	row := &models.EngagementEvent{
		LinkID:     e.LinkID,
		TemplateID: e.TemplateID,
		SessionID:  e.SessionID,
		Action:     action,
		Timestamp:  e.OccurredAt,
	}
	if row.Timestamp.IsZero() {
		row.Timestamp = time.Now().UTC()
	}
	// Durations only make sense on view events.
	if e.Engagement == models.EngagementView {
		row.DurationSeconds = e.DurationSeconds
	}

	return s.events.Insert(ctx, collection, row)
}
