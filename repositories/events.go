package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"trendzo-analytics/analytics"
	"trendzo-analytics/models"
)

// EventRepository reads and writes the four raw engagement event
// collections. It implements analytics.EventStore.
type EventRepository struct {
	db *mongo.Database
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{db: db}
}

func eventFilterQuery(f analytics.EventFilter) bson.M {
	q := bson.M{
		"link_id":   f.LinkID,
		"timestamp": bson.M{"$gte": f.Since},
	}
	if f.Action != "" {
		q["action"] = f.Action
	}
	return q
}

// CountEvents counts events of one collection matching the filter.
func (r *EventRepository) CountEvents(ctx context.Context, collection string, f analytics.EventFilter) (int64, error) {
	return r.db.Collection(collection).CountDocuments(ctx, eventFilterQuery(f))
}

// AvgViewDuration returns the mean duration_seconds over view events in
// the window that carry one, or nil when none do.
func (r *EventRepository) AvgViewDuration(ctx context.Context, f analytics.EventFilter) (*float64, error) {
	match := eventFilterQuery(f)
	match["duration_seconds"] = bson.M{"$ne": nil}

	cur, err := r.db.Collection(models.CollViewEvents).Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": nil,
			"avg": bson.M{"$avg": "$duration_seconds"},
		}}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result struct {
		Avg *float64 `bson:"avg"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&result); err != nil {
			return nil, err
		}
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return result.Avg, nil
}

// Insert appends one raw engagement event row.
func (r *EventRepository) Insert(ctx context.Context, collection string, ev *models.EngagementEvent) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	_, err := r.db.Collection(collection).InsertOne(ctx, ev)
	return err
}
