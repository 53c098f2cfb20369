package events

import (
	"time"

	"trendzo-analytics/models"
)

// EventType identifies the payload kind of a bus event.
type EventType string

const (
	EngagementRecorded EventType = "engagement.recorded"
	MetricsRequested   EventType = "metrics.requested"
)

// BaseEvent carries the common envelope fields of every event.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// EngagementRecordedEvent is published by the dashboard front end for
// every tracked user interaction with a distribution link.
type EngagementRecordedEvent struct {
	BaseEvent
	LinkID          string                `json:"link_id"`
	TemplateID      string                `json:"template_id"`
	SessionID       string                `json:"session_id,omitempty"`
	Engagement      models.EngagementType `json:"engagement"`
	DurationSeconds *float64              `json:"duration_seconds,omitempty"`
	OccurredAt      time.Time             `json:"occurred_at"`
}

// MetricsRequestedEvent asks the pipeline to snapshot a link's metrics
// out of band, e.g. from a scheduled campaign rollup.
type MetricsRequestedEvent struct {
	BaseEvent
	LinkID      string            `json:"link_id"`
	CreatorID   string            `json:"creator_id,omitempty"`
	GeneratorID string            `json:"generator_id,omitempty"`
	SourceType  models.SourceType `json:"source_type"`
	Period      string            `json:"period"`
}
