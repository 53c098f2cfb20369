package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SourceType identifies who authored a piece of content.
type SourceType string

const (
	SourceExpert    SourceType = "expert"
	SourceAutomated SourceType = "automated"
)

// PerformanceTier is the qualitative bucket derived from conversion rate.
type PerformanceTier string

const (
	TierHigh   PerformanceTier = "high"
	TierMedium PerformanceTier = "medium"
	TierLow    PerformanceTier = "low"
)

// Supported calculation periods. Unknown values fall back to Period30d.
const (
	Period7d  = "7d"
	Period30d = "30d"
	Period90d = "90d"
	PeriodAll = "all"
)

// ContentMetrics is one immutable per-link snapshot for a period.
// Collection: content_metrics (append-only audit history)
//
// Exactly one of CreatorID/GeneratorID is set, driven by SourceType.
// Counters are never re-derived after the snapshot is written.
type ContentMetrics struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TemplateID  string             `bson:"template_id" json:"templateId"`
	LinkID      string             `bson:"link_id" json:"linkId"`
	CreatorID   string             `bson:"creator_id,omitempty" json:"creatorId,omitempty"`
	GeneratorID string             `bson:"generator_id,omitempty" json:"generatorId,omitempty"`
	SourceName  string             `bson:"source_name" json:"sourceName"`
	SourceType  SourceType         `bson:"source_type" json:"sourceType"`
	Campaign    string             `bson:"campaign,omitempty" json:"campaign,omitempty"`

	// Impressions equals Clicks for distribution links for now; the
	// click event is the first signal we can observe for this link type.
	Impressions int64 `bson:"impressions" json:"impressions"`
	Clicks      int64 `bson:"clicks" json:"clicks"`
	Views       int64 `bson:"views" json:"views"`
	Edits       int64 `bson:"edits" json:"edits"`
	Saves       int64 `bson:"saves" json:"saves"`
	Shares      int64 `bson:"shares" json:"shares"`

	// Derived rates in percent; 0 when the denominator is 0.
	ConversionRate  float64 `bson:"conversion_rate" json:"conversionRate"`
	ClickToEditRate float64 `bson:"click_to_edit_rate" json:"clickToEditRate"`
	EditToSaveRate  float64 `bson:"edit_to_save_rate" json:"editToSaveRate"`

	// AvgEngagementTime is the mean view duration in seconds; nil when no
	// view event in the window carried a duration.
	AvgEngagementTime *float64 `bson:"avg_engagement_time,omitempty" json:"avgEngagementTime,omitempty"`

	Performance  PerformanceTier `bson:"performance" json:"performance"`
	Period       string          `bson:"period" json:"period"`
	CalculatedAt time.Time       `bson:"calculated_at" json:"calculatedAt"`
}

// TierForConversionRate maps a conversion rate onto a performance tier.
func TierForConversionRate(rate float64) PerformanceTier {
	switch {
	case rate >= 20:
		return TierHigh
	case rate >= 10:
		return TierMedium
	default:
		return TierLow
	}
}
