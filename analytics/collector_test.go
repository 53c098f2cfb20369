package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trendzo-analytics/models"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestCollector(links LinkStore, events EventStore, names NameStore, metrics MetricsStore) *Collector {
	c := NewCollector(links, events, names, metrics)
	c.now = func() time.Time { return testNow }
	return c
}

func testLink() *models.DistributionLink {
	return &models.DistributionLink{
		LinkID:     "lnk_1",
		TemplateID: "tpl_1",
		Campaign:   "summer-launch",
		CreatedAt:  testNow.AddDate(0, -2, 0),
	}
}

func TestCalculateBuildsSnapshot(t *testing.T) {
	avg := 42.5
	events := &fakeEventStore{
		counts: map[string]int64{
			models.CollClickEvents + "/":                              50,
			models.CollViewEvents + "/":                               40,
			models.CollEditorEvents + "/" + models.ActionOpenEditor:   20,
			models.CollEditorEvents + "/" + models.ActionSaveTemplate: 10,
			models.CollShareEvents + "/":                              5,
		},
		avg: &avg,
	}
	metrics := &fakeMetricsStore{}
	c := newTestCollector(&fakeLinkStore{link: testLink()}, events, &fakeNameStore{name: "Jamie Park"}, metrics)

	m, err := c.Calculate(context.Background(), "lnk_1", "cr_7", models.SourceExpert, "30d")
	assert.NoError(t, err)
	assert.NotNil(t, m)

	assert.Equal(t, "tpl_1", m.TemplateID)
	assert.Equal(t, "lnk_1", m.LinkID)
	assert.Equal(t, "cr_7", m.CreatorID)
	assert.Empty(t, m.GeneratorID)
	assert.Equal(t, "Jamie Park", m.SourceName)
	assert.Equal(t, "summer-launch", m.Campaign)

	assert.Equal(t, int64(50), m.Clicks)
	// Impressions are defined equal to clicks for distribution links.
	assert.Equal(t, m.Clicks, m.Impressions)
	assert.Equal(t, int64(40), m.Views)
	assert.Equal(t, int64(20), m.Edits)
	assert.Equal(t, int64(10), m.Saves)
	assert.Equal(t, int64(5), m.Shares)

	assert.InDelta(t, 20.0, m.ConversionRate, 1e-9)
	assert.InDelta(t, 40.0, m.ClickToEditRate, 1e-9)
	assert.InDelta(t, 50.0, m.EditToSaveRate, 1e-9)
	if assert.NotNil(t, m.AvgEngagementTime) {
		assert.InDelta(t, 42.5, *m.AvgEngagementTime, 1e-9)
	}
	assert.Equal(t, models.TierHigh, m.Performance)
	assert.Equal(t, "30d", m.Period)
	assert.Equal(t, testNow.UTC(), m.CalculatedAt)

	// One audit row appended, identical to the returned record.
	if assert.Len(t, metrics.appended, 1) {
		assert.Equal(t, *m, metrics.appended[0])
	}
}

func TestCalculateAutomatedSetsGeneratorID(t *testing.T) {
	metrics := &fakeMetricsStore{}
	c := newTestCollector(&fakeLinkStore{link: testLink()}, &fakeEventStore{counts: map[string]int64{}}, &fakeNameStore{name: "Prompt v3"}, metrics)

	m, err := c.Calculate(context.Background(), "lnk_1", "gen_2", models.SourceAutomated, "7d")
	assert.NoError(t, err)
	assert.Equal(t, "gen_2", m.GeneratorID)
	assert.Empty(t, m.CreatorID)
}

func TestCalculateUnknownLinkReturnsNilWithoutAppend(t *testing.T) {
	metrics := &fakeMetricsStore{}
	c := newTestCollector(&fakeLinkStore{err: ErrLinkNotFound}, &fakeEventStore{}, &fakeNameStore{}, metrics)

	m, err := c.Calculate(context.Background(), "missing", "cr_7", models.SourceExpert, "30d")
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrLinkNotFound)
	assert.Empty(t, metrics.appended)
}

func TestCalculateEventStoreFailureReturnsNilWithoutAppend(t *testing.T) {
	metrics := &fakeMetricsStore{}
	c := newTestCollector(&fakeLinkStore{link: testLink()}, &fakeEventStore{err: errors.New("timeout")}, &fakeNameStore{}, metrics)

	m, err := c.Calculate(context.Background(), "lnk_1", "cr_7", models.SourceExpert, "30d")
	assert.Nil(t, m)
	assert.Error(t, err)
	assert.Empty(t, metrics.appended)
}

func TestCalculateNameLookupFailureDegradesToPlaceholder(t *testing.T) {
	metrics := &fakeMetricsStore{}
	c := newTestCollector(&fakeLinkStore{link: testLink()}, &fakeEventStore{counts: map[string]int64{}}, &fakeNameStore{err: errors.New("not found")}, metrics)

	m, err := c.Calculate(context.Background(), "lnk_1", "cr_7", models.SourceExpert, "30d")
	assert.NoError(t, err)
	assert.Equal(t, "Unknown expert", m.SourceName)
	assert.Len(t, metrics.appended, 1)

	m, err = c.Calculate(context.Background(), "lnk_1", "gen_2", models.SourceAutomated, "30d")
	assert.NoError(t, err)
	assert.Equal(t, "Unknown generator", m.SourceName)
}

func TestCalculateAppendFailureStillReturnsRecord(t *testing.T) {
	metrics := &fakeMetricsStore{appendErr: errors.New("write denied")}
	c := newTestCollector(&fakeLinkStore{link: testLink()}, &fakeEventStore{counts: map[string]int64{}}, &fakeNameStore{name: "Jamie Park"}, metrics)

	m, err := c.Calculate(context.Background(), "lnk_1", "cr_7", models.SourceExpert, "30d")
	assert.NoError(t, err)
	assert.NotNil(t, m)
}

func TestCalculateZeroCountersHaveZeroRates(t *testing.T) {
	metrics := &fakeMetricsStore{}
	c := newTestCollector(&fakeLinkStore{link: testLink()}, &fakeEventStore{counts: map[string]int64{}}, &fakeNameStore{name: "Jamie Park"}, metrics)

	m, err := c.Calculate(context.Background(), "lnk_1", "cr_7", models.SourceExpert, "30d")
	assert.NoError(t, err)
	assert.Zero(t, m.ConversionRate)
	assert.Zero(t, m.ClickToEditRate)
	assert.Zero(t, m.EditToSaveRate)
	assert.Nil(t, m.AvgEngagementTime)
	assert.Equal(t, models.TierLow, m.Performance)
}
