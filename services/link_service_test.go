package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"trendzo-analytics/models"
)

type stubLinkRegistry struct {
	created bool
	err     error
	links   []models.DistributionLink
}

func (s *stubLinkRegistry) UpsertByLinkID(ctx context.Context, link *models.DistributionLink) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.links = append(s.links, *link)
	return s.created, nil
}

func TestRegisterLink(t *testing.T) {
	registry := &stubLinkRegistry{created: true}
	svc := NewLinkService(registry)

	created, err := svc.Register(context.Background(), &models.DistributionLink{
		LinkID:     "lnk_1",
		TemplateID: "tpl_1",
		Campaign:   "summer-launch",
	})
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, registry.links, 1)
}

func TestRegisterLinkUpdatesExisting(t *testing.T) {
	svc := NewLinkService(&stubLinkRegistry{created: false})

	created, err := svc.Register(context.Background(), &models.DistributionLink{
		LinkID:     "lnk_1",
		TemplateID: "tpl_2",
	})
	assert.NoError(t, err)
	assert.False(t, created)
}

func TestRegisterLinkValidation(t *testing.T) {
	registry := &stubLinkRegistry{}
	svc := NewLinkService(registry)

	_, err := svc.Register(context.Background(), &models.DistributionLink{TemplateID: "tpl_1"})
	assert.Error(t, err)

	_, err = svc.Register(context.Background(), &models.DistributionLink{LinkID: "lnk_1"})
	assert.Error(t, err)

	assert.Empty(t, registry.links)
}

func TestRegisterLinkUpsertFailure(t *testing.T) {
	svc := NewLinkService(&stubLinkRegistry{err: assert.AnError})

	_, err := svc.Register(context.Background(), &models.DistributionLink{
		LinkID:     "lnk_1",
		TemplateID: "tpl_1",
	})
	assert.ErrorIs(t, err, assert.AnError)
}
