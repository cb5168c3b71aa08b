package reportRepo

import (
	"context"
	"fmt"
	"time"

	"civicjustice/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a submitted report and returns its ID.
func (r *mongoReportRepo) Create(ctx context.Context, report models.SubmittedReport) (string, error) {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.SubmittedAt.IsZero() {
		report.SubmittedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, report); err != nil {
		return "", fmt.Errorf("failed to insert report: %w", err)
	}
	return report.ID, nil
}

// ensureIndexes creates indexes for the lookups above.
func (r *mongoReportRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "report.category", Value: 1}, {Key: "submittedAt", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
