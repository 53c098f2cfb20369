package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DistributionLink is a content distribution link registered by the
// campaign tooling. LinkID is the external identifier carried by every
// engagement event.
// Collection: distribution_links
type DistributionLink struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LinkID     string             `bson:"link_id" json:"linkId"`
	TemplateID string             `bson:"template_id" json:"templateId"`
	Campaign   string             `bson:"utm_campaign,omitempty" json:"utmCampaign,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
