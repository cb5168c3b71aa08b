package reportRepo

import (
	"context"

	"civicjustice/database"
	"civicjustice/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReportRepository persists submitted issue reports.
type ReportRepository interface {
	Create(ctx context.Context, report models.SubmittedReport) (string, error)
}

type mongoReportRepo struct {
	coll *mongo.Collection
}

// NewMongoReportRepo returns a ReportRepository backed by the "issue_reports" collection.
func NewMongoReportRepo() (ReportRepository, error) {
	r := &mongoReportRepo{
		coll: database.Database().Collection("issue_reports"),
	}
	if err := r.ensureIndexes(); err != nil {
		return nil, err
	}
	return r, nil
}
