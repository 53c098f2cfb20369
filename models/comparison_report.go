package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MetricComparison is one expert-vs-automated triple.
type MetricComparison struct {
	Expert    float64 `bson:"expert" json:"expert"`
	Automated float64 `bson:"automated" json:"automated"`
	Delta     float64 `bson:"delta" json:"delta"`
}

// ComparisonMetrics holds the six aggregate metrics of a report. The five
// rates are computed from summed counters, not averaged per-record rates.
type ComparisonMetrics struct {
	ClickRate         MetricComparison `bson:"click_rate" json:"clickRate"`
	ViewToEditRate    MetricComparison `bson:"view_to_edit_rate" json:"viewToEditRate"`
	EditToSaveRate    MetricComparison `bson:"edit_to_save_rate" json:"editToSaveRate"`
	ConversionRate    MetricComparison `bson:"conversion_rate" json:"conversionRate"`
	ShareRate         MetricComparison `bson:"share_rate" json:"shareRate"`
	AvgEngagementTime MetricComparison `bson:"avg_engagement_time" json:"avgEngagementTime"`
}

// TopPerformer is one ranked entry of a report.
type TopPerformer struct {
	TemplateID string `bson:"template_id" json:"templateId"`
	Score      int    `bson:"score" json:"score"`
	Campaign   string `bson:"campaign,omitempty" json:"campaign,omitempty"`
}

// TopPerformers holds the top five per source type, sorted by score descending.
type TopPerformers struct {
	Expert    []TopPerformer `bson:"expert" json:"expert"`
	Automated []TopPerformer `bson:"automated" json:"automated"`
}

// ComparisonReport is one expert-vs-automated comparison, regenerated on
// demand from the content_metrics audit rows of a period.
// Collection: comparison_reports (append-only audit history)
type ComparisonReport struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Period         string             `bson:"period" json:"period"`
	ExpertCount    int                `bson:"expert_count" json:"expertCount"`
	AutomatedCount int                `bson:"automated_count" json:"automatedCount"`
	Metrics        ComparisonMetrics  `bson:"metrics" json:"metrics"`
	TopPerformers  TopPerformers      `bson:"top_performers" json:"topPerformers"`
	InsightSummary []string           `bson:"insight_summary" json:"insightSummary"`
	GeneratedAt    time.Time          `bson:"generated_at" json:"generatedAt"`
}
