package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"trendzo-analytics/models"
)

type stubTemplateStore struct {
	matched   bool
	updateErr error
	indexErr  error
	entries   []models.ContentIndexEntry
}

func (s *stubTemplateStore) UpdateProvenance(ctx context.Context, templateID string, isExpert bool, creatorID, notes string) (bool, error) {
	return s.matched, s.updateErr
}

func (s *stubTemplateStore) AppendIndexEntry(ctx context.Context, entry *models.ContentIndexEntry) error {
	if s.indexErr != nil {
		return s.indexErr
	}
	s.entries = append(s.entries, *entry)
	return nil
}

func TestTagSourceTagsAndIndexes(t *testing.T) {
	store := &stubTemplateStore{matched: true}
	svc := NewTemplateService(store)

	ok := svc.TagSource(context.Background(), "tpl_1", true, "creator_9", "hand reviewed")
	assert.True(t, ok)
	assert.Len(t, store.entries, 1)
	assert.Equal(t, models.SourceExpert, store.entries[0].SourceType)
	assert.Equal(t, "creator_9", store.entries[0].CreatorID)
}

func TestTagSourceAutomated(t *testing.T) {
	store := &stubTemplateStore{matched: true}
	svc := NewTemplateService(store)

	ok := svc.TagSource(context.Background(), "tpl_1", false, "gen_2", "")
	assert.True(t, ok)
	assert.Equal(t, models.SourceAutomated, store.entries[0].SourceType)
}

func TestTagSourceUnknownTemplate(t *testing.T) {
	svc := NewTemplateService(&stubTemplateStore{matched: false})

	assert.False(t, svc.TagSource(context.Background(), "tpl_missing", true, "", ""))
}

func TestTagSourceUpdateFailure(t *testing.T) {
	store := &stubTemplateStore{updateErr: assert.AnError}
	svc := NewTemplateService(store)

	assert.False(t, svc.TagSource(context.Background(), "tpl_1", true, "", ""))
	assert.Empty(t, store.entries)
}

func TestTagSourceIndexFailureStillSucceeds(t *testing.T) {
	store := &stubTemplateStore{matched: true, indexErr: assert.AnError}
	svc := NewTemplateService(store)

	assert.True(t, svc.TagSource(context.Background(), "tpl_1", true, "", ""))
}
