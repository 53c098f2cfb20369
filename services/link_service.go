package services

import (
	"context"
	"fmt"

	"trendzo-analytics/logger"
	"trendzo-analytics/models"
)

// LinkRegistry is the write side of the distribution link registry.
type LinkRegistry interface {
	UpsertByLinkID(ctx context.Context, link *models.DistributionLink) (bool, error)
}

// LinkService registers distribution links created by the campaign
// tooling so engagement events can resolve against them.
type LinkService struct {
	links LinkRegistry
}

func NewLinkService(links LinkRegistry) *LinkService {
	return &LinkService{links: links}
}

// Register upserts a link keyed by its external link_id. Re-registering
// an existing link updates its template and campaign.
func (s *LinkService) Register(ctx context.Context, link *models.DistributionLink) (created bool, err error) {
	if link.LinkID == "" {
		return false, fmt.Errorf("link registration requires a link_id")
	}
	if link.TemplateID == "" {
		return false, fmt.Errorf("link registration requires a template_id")
	}

	created, err = s.links.UpsertByLinkID(ctx, link)
	if err != nil {
		logger.ErrorWithFields("failed to register distribution link", logger.Fields{
			"operation": "register_link",
			"link_id":   link.LinkID,
			"error":     err.Error(),
		})
		return false, fmt.Errorf("register link %s: %w", link.LinkID, err)
	}

	logger.InfoWithFields("distribution link registered", logger.Fields{
		"operation":   "register_link",
		"link_id":     link.LinkID,
		"template_id": link.TemplateID,
		"created":     created,
	})
	return created, nil
}
