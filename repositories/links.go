package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trendzo-analytics/analytics"
	"trendzo-analytics/models"
)

// LinkRepository backs the link-registry lookups.
// It implements analytics.LinkStore.
type LinkRepository struct {
	col *mongo.Collection
}

func NewLinkRepository(db *mongo.Database) *LinkRepository {
	return &LinkRepository{col: db.Collection("distribution_links")}
}

// GetLink resolves a link by its external link_id. Unknown ids map to
// analytics.ErrLinkNotFound.
func (r *LinkRepository) GetLink(ctx context.Context, linkID string) (*models.DistributionLink, error) {
	var link models.DistributionLink
	if err := r.col.FindOne(ctx, bson.M{"link_id": linkID}).Decode(&link); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, analytics.ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

// UpsertByLinkID registers a distribution link, keyed by link_id.
// Returns true when a new link row was created.
func (r *LinkRepository) UpsertByLinkID(ctx context.Context, link *models.DistributionLink) (bool, error) {
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}
	filter := bson.M{"link_id": link.LinkID}
	update := bson.M{
		"$setOnInsert": bson.M{"created_at": link.CreatedAt},
		"$set": bson.M{
			"link_id":      link.LinkID,
			"template_id":  link.TemplateID,
			"utm_campaign": link.Campaign,
		},
	}
	opts := options.Update().SetUpsert(true)
	res, err := r.col.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}
