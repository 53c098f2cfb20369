package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trendzo-analytics/events"
	"trendzo-analytics/models"
)

type insertedEvent struct {
	collection string
	row        models.EngagementEvent
}

type stubEventSink struct {
	inserted []insertedEvent
	err      error
}

func (s *stubEventSink) Insert(ctx context.Context, collection string, ev *models.EngagementEvent) error {
	if s.err != nil {
		return s.err
	}
	s.inserted = append(s.inserted, insertedEvent{collection: collection, row: *ev})
	return nil
}

func engagement(t models.EngagementType) events.EngagementRecordedEvent {
	return events.EngagementRecordedEvent{
		BaseEvent:  events.BaseEvent{ID: "evt_1", Type: events.EngagementRecorded},
		LinkID:     "lnk_1",
		TemplateID: "tpl_1",
		SessionID:  "sess_1",
		Engagement: t,
		OccurredAt: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestRecordRoutesEventsToCollections(t *testing.T) {
	cases := []struct {
		engagement models.EngagementType
		collection string
		action     string
	}{
		{models.EngagementClick, models.CollClickEvents, ""},
		{models.EngagementView, models.CollViewEvents, ""},
		{models.EngagementEdit, models.CollEditorEvents, models.ActionOpenEditor},
		{models.EngagementSave, models.CollEditorEvents, models.ActionSaveTemplate},
		{models.EngagementShare, models.CollShareEvents, ""},
	}
	for _, tc := range cases {
		sink := &stubEventSink{}
		svc := NewIngestService(sink)

		err := svc.Record(context.Background(), engagement(tc.engagement))
		assert.NoError(t, err, "engagement %s", tc.engagement)
		assert.Len(t, sink.inserted, 1)
		assert.Equal(t, tc.collection, sink.inserted[0].collection)
		assert.Equal(t, tc.action, sink.inserted[0].row.Action)
		assert.Equal(t, "lnk_1", sink.inserted[0].row.LinkID)
	}
}

func TestRecordKeepsDurationOnViewsOnly(t *testing.T) {
	dur := 42.5
	sink := &stubEventSink{}
	svc := NewIngestService(sink)

	view := engagement(models.EngagementView)
	view.DurationSeconds = &dur
	assert.NoError(t, svc.Record(context.Background(), view))

	click := engagement(models.EngagementClick)
	click.DurationSeconds = &dur
	assert.NoError(t, svc.Record(context.Background(), click))

	assert.NotNil(t, sink.inserted[0].row.DurationSeconds)
	assert.Equal(t, 42.5, *sink.inserted[0].row.DurationSeconds)
	assert.Nil(t, sink.inserted[1].row.DurationSeconds)
}

func TestRecordDefaultsMissingTimestamp(t *testing.T) {
	sink := &stubEventSink{}
	svc := NewIngestService(sink)

	ev := engagement(models.EngagementClick)
	ev.OccurredAt = time.Time{}
	assert.NoError(t, svc.Record(context.Background(), ev))
	assert.False(t, sink.inserted[0].row.Timestamp.IsZero())
}

func TestRecordRejectsMissingLinkID(t *testing.T) {
	sink := &stubEventSink{}
	svc := NewIngestService(sink)

	ev := engagement(models.EngagementClick)
	ev.LinkID = ""
	assert.Error(t, svc.Record(context.Background(), ev))
	assert.Empty(t, sink.inserted)
}

func TestRecordRejectsUnknownEngagementType(t *testing.T) {
	sink := &stubEventSink{}
	svc := NewIngestService(sink)

	ev := engagement(models.EngagementType("hover"))
	assert.Error(t, svc.Record(context.Background(), ev))
	assert.Empty(t, sink.inserted)
}

func TestRecordPropagatesInsertFailure(t *testing.T) {
	svc := NewIngestService(&stubEventSink{err: assert.AnError})

	err := svc.Record(context.Background(), engagement(models.EngagementClick))
	assert.ErrorIs(t, err, assert.AnError)
}
