package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"trendzo-analytics/models"
)

// TemplateRepository owns template provenance updates and the
// content_index append.
type TemplateRepository struct {
	templates *mongo.Collection
	index     *mongo.Collection
}

func NewTemplateRepository(db *mongo.Database) *TemplateRepository {
	return &TemplateRepository{
		templates: db.Collection("templates"),
		index:     db.Collection("content_index"),
	}
}

// UpdateProvenance sets the source fields of a template. Returns false
// when the template does not exist.
func (r *TemplateRepository) UpdateProvenance(ctx context.Context, templateID string, isExpert bool, creatorID, notes string) (bool, error) {
	now := time.Now().UTC()
	res, err := r.templates.UpdateOne(ctx, bson.M{"template_id": templateID}, bson.M{
		"$set": bson.M{
			"is_expert":        isExpert,
			"creator_id":       creatorID,
			"source_notes":     notes,
			"source_tagged_at": now,
			"updated_at":       now,
		},
	})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// AppendIndexEntry appends one provenance index row.
func (r *TemplateRepository) AppendIndexEntry(ctx context.Context, entry *models.ContentIndexEntry) error {
	if entry.TaggedAt.IsZero() {
		entry.TaggedAt = time.Now().UTC()
	}
	_, err := r.index.InsertOne(ctx, entry)
	return err
}
