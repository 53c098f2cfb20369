package services

import (
	"context"

	"trendzo-analytics/logger"
	"trendzo-analytics/models"
)

// TemplateStore is the provenance slice of the template repository.
type TemplateStore interface {
	UpdateProvenance(ctx context.Context, templateID string, isExpert bool, creatorID, notes string) (bool, error)
	AppendIndexEntry(ctx context.Context, entry *models.ContentIndexEntry) error
}

// TemplateService tags a template's content provenance and maintains
// the expert/automated content index.
type TemplateService struct {
	templates TemplateStore
}

func NewTemplateService(templates TemplateStore) *TemplateService {
	return &TemplateService{templates: templates}
}

// TagSource updates a template's provenance fields and appends to the
// content index. Returns false when the template does not exist or the
// update fails; an index append failure is logged but the tag still
// counts as a success once the template row is updated.
func (s *TemplateService) TagSource(ctx context.Context, templateID string, isExpert bool, creatorID, notes string) bool {
	matched, err := s.templates.UpdateProvenance(ctx, templateID, isExpert, creatorID, notes)
	if err != nil {
		logger.ErrorWithFields("failed to update template provenance", logger.Fields{
			"operation":   "tag_source",
			"template_id": templateID,
			"error":       err.Error(),
		})
		return false
	}
	if !matched {
		logger.WarnWithFields("tag_source on unknown template", logger.Fields{
			"operation":   "tag_source",
			"template_id": templateID,
		})
		return false
	}

	source := models.SourceAutomated
	if isExpert {
		source = models.SourceExpert
	}
	entry := &models.ContentIndexEntry{
		TemplateID: templateID,
		SourceType: source,
		CreatorID:  creatorID,
		Notes:      notes,
	}
	if err := s.templates.AppendIndexEntry(ctx, entry); err != nil {
		logger.ErrorWithFields("failed to append content_index entry", logger.Fields{
			"operation":   "tag_source",
			"template_id": templateID,
			"error":       err.Error(),
		})
	}
	return true
}
