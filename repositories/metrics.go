package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trendzo-analytics/models"
)

// MetricsRepository is the append-only content_metrics audit history.
// It implements analytics.MetricsStore.
type MetricsRepository struct {
	col *mongo.Collection
}

func NewMetricsRepository(db *mongo.Database) *MetricsRepository {
	return &MetricsRepository{col: db.Collection("content_metrics")}
}

// Append inserts one snapshot. Snapshots are never updated or deleted
// here; retention cleanup is a separate concern.
func (r *MetricsRepository) Append(ctx context.Context, m *models.ContentMetrics) error {
	_, err := r.col.InsertOne(ctx, m)
	return err
}

// ListSince returns every snapshot calculated at or after the given time.
func (r *MetricsRepository) ListSince(ctx context.Context, since time.Time) ([]models.ContentMetrics, error) {
	cur, err := r.col.Find(ctx, bson.M{"calculated_at": bson.M{"$gte": since}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ContentMetrics
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByLink returns the audit history of one link, newest first.
func (r *MetricsRepository) ListByLink(ctx context.Context, linkID string, since time.Time) ([]models.ContentMetrics, error) {
	opts := options.Find().SetSort(bson.D{{Key: "calculated_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{
		"link_id":       linkID,
		"calculated_at": bson.M{"$gte": since},
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ContentMetrics
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
