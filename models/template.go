package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Template is a video template with content-source provenance fields.
// Collection: templates
type Template struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TemplateID     string             `bson:"template_id" json:"templateId"`
	Title          string             `bson:"title" json:"title"`
	IsExpert       bool               `bson:"is_expert" json:"isExpert"`
	CreatorID      string             `bson:"creator_id,omitempty" json:"creatorId,omitempty"`
	SourceNotes    string             `bson:"source_notes,omitempty" json:"sourceNotes,omitempty"`
	SourceTaggedAt *time.Time         `bson:"source_tagged_at,omitempty" json:"sourceTaggedAt,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ContentIndexEntry is one append-only provenance index row written when
// a template is tagged as expert or automated.
// Collection: content_index
type ContentIndexEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TemplateID string             `bson:"template_id" json:"templateId"`
	SourceType SourceType         `bson:"source_type" json:"sourceType"`
	CreatorID  string             `bson:"creator_id,omitempty" json:"creatorId,omitempty"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
	TaggedAt   time.Time          `bson:"tagged_at" json:"taggedAt"`
}
