package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trendzo-analytics/models"
)

// ReportRepository is the append-only comparison_reports audit history.
// It implements analytics.ReportStore.
type ReportRepository struct {
	col *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{col: db.Collection("comparison_reports")}
}

// Append inserts one generated report.
func (r *ReportRepository) Append(ctx context.Context, report *models.ComparisonReport) error {
	_, err := r.col.InsertOne(ctx, report)
	return err
}

// LatestByPeriod returns the most recently generated report for a
// period, or nil when none has been generated yet.
func (r *ReportRepository) LatestByPeriod(ctx context.Context, period string) (*models.ComparisonReport, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "generated_at", Value: -1}})
	var report models.ComparisonReport
	if err := r.col.FindOne(ctx, bson.M{"period": period}, opts).Decode(&report); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}
