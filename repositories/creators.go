package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"trendzo-analytics/models"
)

// CreatorRepository resolves creator and generator display names.
// It implements analytics.NameStore.
type CreatorRepository struct {
	db *mongo.Database
}

func NewCreatorRepository(db *mongo.Database) *CreatorRepository {
	return &CreatorRepository{db: db}
}

// GetName looks up the display name for a creator or generator id.
func (r *CreatorRepository) GetName(ctx context.Context, id string, source models.SourceType) (string, error) {
	var result struct {
		Name string `bson:"name"`
	}

	if source == models.SourceAutomated {
		err := r.db.Collection("generators").FindOne(ctx, bson.M{"generator_id": id}).Decode(&result)
		if err != nil {
			return "", err
		}
		return result.Name, nil
	}

	err := r.db.Collection("creators").FindOne(ctx, bson.M{"creator_id": id}).Decode(&result)
	if err != nil {
		return "", err
	}
	return result.Name, nil
}
