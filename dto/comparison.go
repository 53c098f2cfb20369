package dto

import (
	"time"

	"trendzo-analytics/models"
)

// MetricComparisonDTO is one expert-vs-automated metric triple.
type MetricComparisonDTO struct {
	Expert    float64 `json:"expert"`
	Automated float64 `json:"automated"`
	Delta     float64 `json:"delta"`
}

// ComparisonMetricsDTO groups the six aggregate metrics of a report.
type ComparisonMetricsDTO struct {
	ClickRate         MetricComparisonDTO `json:"click_rate"`
	ViewToEditRate    MetricComparisonDTO `json:"view_to_edit_rate"`
	EditToSaveRate    MetricComparisonDTO `json:"edit_to_save_rate"`
	ConversionRate    MetricComparisonDTO `json:"conversion_rate"`
	ShareRate         MetricComparisonDTO `json:"share_rate"`
	AvgEngagementTime MetricComparisonDTO `json:"avg_engagement_time"`
}

// TopPerformerDTO is one ranked entry.
type TopPerformerDTO struct {
	TemplateID string `json:"template_id"`
	Score      int    `json:"score"`
	Campaign   string `json:"campaign,omitempty"`
}

// ComparisonReportDTO exposes one comparison report to API consumers.
type ComparisonReportDTO struct {
	ID             string               `json:"id"`
	Period         string               `json:"period"`
	ExpertCount    int                  `json:"expert_count"`
	AutomatedCount int                  `json:"automated_count"`
	Metrics        ComparisonMetricsDTO `json:"metrics"`
	TopExpert      []TopPerformerDTO    `json:"top_expert"`
	TopAutomated   []TopPerformerDTO    `json:"top_automated"`
	InsightSummary []string             `json:"insight_summary"`
	GeneratedAt    time.Time            `json:"generated_at"`
}

// NewComparisonReportDTO constructs ComparisonReportDTO from models.ComparisonReport
func NewComparisonReportDTO(r models.ComparisonReport) ComparisonReportDTO {
	return ComparisonReportDTO{
		ID:             r.ID.Hex(),
		Period:         r.Period,
		ExpertCount:    r.ExpertCount,
		AutomatedCount: r.AutomatedCount,
		Metrics: ComparisonMetricsDTO{
			ClickRate:         newMetricComparisonDTO(r.Metrics.ClickRate),
			ViewToEditRate:    newMetricComparisonDTO(r.Metrics.ViewToEditRate),
			EditToSaveRate:    newMetricComparisonDTO(r.Metrics.EditToSaveRate),
			ConversionRate:    newMetricComparisonDTO(r.Metrics.ConversionRate),
			ShareRate:         newMetricComparisonDTO(r.Metrics.ShareRate),
			AvgEngagementTime: newMetricComparisonDTO(r.Metrics.AvgEngagementTime),
		},
		TopExpert:      newTopPerformerDTOs(r.TopPerformers.Expert),
		TopAutomated:   newTopPerformerDTOs(r.TopPerformers.Automated),
		InsightSummary: r.InsightSummary,
		GeneratedAt:    r.GeneratedAt,
	}
}

func newMetricComparisonDTO(m models.MetricComparison) MetricComparisonDTO {
	return MetricComparisonDTO{Expert: m.Expert, Automated: m.Automated, Delta: m.Delta}
}

func newTopPerformerDTOs(in []models.TopPerformer) []TopPerformerDTO {
	out := make([]TopPerformerDTO, 0, len(in))
	for _, p := range in {
		out = append(out, TopPerformerDTO{TemplateID: p.TemplateID, Score: p.Score, Campaign: p.Campaign})
	}
	return out
}
