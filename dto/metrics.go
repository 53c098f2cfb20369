package dto

import (
	"time"

	"trendzo-analytics/models"
)

// ContentMetricsDTO exposes one metrics snapshot to API consumers.
// ID is a hex string to keep transport simple; AvgEngagementTime is
// omitted when no view in the window carried a duration.
type ContentMetricsDTO struct {
	ID                string   `json:"id"`
	TemplateID        string   `json:"template_id"`
	LinkID            string   `json:"link_id"`
	CreatorID         string   `json:"creator_id,omitempty"`
	GeneratorID       string   `json:"generator_id,omitempty"`
	SourceName        string   `json:"source_name"`
	SourceType        string   `json:"source_type"`
	Campaign          string   `json:"campaign,omitempty"`
	Impressions       int64    `json:"impressions"`
	Clicks            int64    `json:"clicks"`
	Views             int64    `json:"views"`
	Edits             int64    `json:"edits"`
	Saves             int64    `json:"saves"`
	Shares            int64    `json:"shares"`
	ConversionRate    float64  `json:"conversion_rate"`
	ClickToEditRate   float64  `json:"click_to_edit_rate"`
	EditToSaveRate    float64  `json:"edit_to_save_rate"`
	AvgEngagementTime *float64 `json:"avg_engagement_time,omitempty"`
	Performance       string   `json:"performance"`
	Period            string   `json:"period"`
	CalculatedAt      time.Time `json:"calculated_at"`
}

// NewContentMetricsDTO constructs ContentMetricsDTO from models.ContentMetrics
func NewContentMetricsDTO(m models.ContentMetrics) ContentMetricsDTO {
	return ContentMetricsDTO{
		ID:                m.ID.Hex(),
		TemplateID:        m.TemplateID,
		LinkID:            m.LinkID,
		CreatorID:         m.CreatorID,
		GeneratorID:       m.GeneratorID,
		SourceName:        m.SourceName,
		SourceType:        string(m.SourceType),
		Campaign:          m.Campaign,
		Impressions:       m.Impressions,
		Clicks:            m.Clicks,
		Views:             m.Views,
		Edits:             m.Edits,
		Saves:             m.Saves,
		Shares:            m.Shares,
		ConversionRate:    m.ConversionRate,
		ClickToEditRate:   m.ClickToEditRate,
		EditToSaveRate:    m.EditToSaveRate,
		AvgEngagementTime: m.AvgEngagementTime,
		Performance:       string(m.Performance),
		Period:            m.Period,
		CalculatedAt:      m.CalculatedAt,
	}
}

// ScoreDTO is the performance score of a link's latest snapshot.
type ScoreDTO struct {
	LinkID       string    `json:"link_id"`
	TemplateID   string    `json:"template_id"`
	Score        int       `json:"score"`
	Period       string    `json:"period"`
	CalculatedAt time.Time `json:"calculated_at"`
}
