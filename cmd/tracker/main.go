package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"trendzo-analytics/analytics"
	"trendzo-analytics/config"
	"trendzo-analytics/db"
	"trendzo-analytics/eventbus"
	"trendzo-analytics/events"
	"trendzo-analytics/logger"
	"trendzo-analytics/models"
	"trendzo-analytics/repositories"
	"trendzo-analytics/services"
)

// The tracker consumes engagement events from the bus and lands them in
// the Mongo event collections the metrics pipeline counts against. It
// also serves out-of-band metrics requests from campaign tooling.
func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	brokers := eventbus.GetBrokers()
	for _, t := range eventbus.AllTopics {
		if err := eventbus.EnsureTopics(brokers, t, 3); err != nil {
			logger.Log.Errorf("failed to ensure eventbus topics for %s: %v", t.Base(), err)
		}
	}

	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		logger.Log.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	database := db.Database()
	eventRepo := repositories.NewEventRepository(database)
	linkRepo := repositories.NewLinkRepository(database)
	creatorRepo := repositories.NewCreatorRepository(database)
	metricsRepo := repositories.NewMetricsRepository(database)

	ingestSvc := services.NewIngestService(eventRepo)
	collector := analytics.NewCollector(linkRepo, eventRepo, creatorRepo, metricsRepo)

	groupID := eventbus.GetGroupID()

	logger.Log.Info("starting tracker service with eventbus...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		err := eventbus.SubscribeJSON(ctx, bus, groupID, eventbus.TopicEngagementEvents,
			func(ctx context.Context, payload events.EngagementRecordedEvent, meta eventbus.Event) error {
				return ingestSvc.Record(ctx, payload)
			})
		if err != nil && err != context.Canceled {
			logger.Log.Errorf("engagement consumer error: %v", err)
		}
	}()

	go func() {
		err := eventbus.SubscribeJSON(ctx, bus, groupID+"-metrics", eventbus.TopicMetricsRequests,
			func(ctx context.Context, payload events.MetricsRequestedEvent, meta eventbus.Event) error {
				originID := payload.CreatorID
				if payload.SourceType == models.SourceAutomated {
					originID = payload.GeneratorID
				}
				_, err := collector.Calculate(ctx, payload.LinkID, originID, payload.SourceType, payload.Period)
				return err
			})
		if err != nil && err != context.Canceled {
			logger.Log.Errorf("metrics request consumer error: %v", err)
		}
	}()

	<-sigChan
	logger.Log.Info("received shutdown signal, shutting down tracker service...")

	cancel()

	logger.Log.Info("tracker service stopped")
}
