package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event collections. Edits and saves share one collection and are told
// apart by the action field.
const (
	CollClickEvents  = "click_events"
	CollViewEvents   = "view_events"
	CollEditorEvents = "editor_events"
	CollShareEvents  = "share_events"
)

// Editor event actions.
const (
	ActionOpenEditor   = "open_editor"
	ActionSaveTemplate = "save_template"
)

// EngagementType is the kind of raw engagement a tracked user produced.
type EngagementType string

const (
	EngagementClick EngagementType = "click"
	EngagementView  EngagementType = "view"
	EngagementEdit  EngagementType = "edit"
	EngagementSave  EngagementType = "save"
	EngagementShare EngagementType = "share"
)

// EngagementEvent is one raw ingested event row. View events may carry a
// duration in seconds; editor rows carry the action discriminator.
type EngagementEvent struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LinkID          string             `bson:"link_id" json:"linkId"`
	TemplateID      string             `bson:"template_id" json:"templateId"`
	SessionID       string             `bson:"session_id,omitempty" json:"sessionId,omitempty"`
	Action          string             `bson:"action,omitempty" json:"action,omitempty"`
	DurationSeconds *float64           `bson:"duration_seconds,omitempty" json:"durationSeconds,omitempty"`
	Timestamp       time.Time          `bson:"timestamp" json:"timestamp"`
}

// CollectionFor maps an engagement type onto its event collection and
// editor action. Returns "" for unknown types.
func CollectionFor(t EngagementType) (collection string, action string) {
	switch t {
	case EngagementClick:
		return CollClickEvents, ""
	case EngagementView:
		return CollViewEvents, ""
	case EngagementEdit:
		return CollEditorEvents, ActionOpenEditor
	case EngagementSave:
		return CollEditorEvents, ActionSaveTemplate
	case EngagementShare:
		return CollShareEvents, ""
	default:
		return "", ""
	}
}
