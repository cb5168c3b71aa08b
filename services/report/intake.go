package report

import (
	"context"
	"fmt"

	reportRepo "civicjustice/database/repository/report"
	"civicjustice/models"
	"civicjustice/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// IntakeSink receives submitted reports for review.
type IntakeSink interface {
	Submit(ctx context.Context, report models.SubmittedReport) error
}

// LogIntake writes a summary of each report to the log. Personal details are left out.
type LogIntake struct {
	Logger *zap.Logger
}

func (l LogIntake) Submit(_ context.Context, report models.SubmittedReport) error {
	l.Logger.Info("Issue report received",
		zap.String("reportID", report.ID),
		zap.String("category", report.Report.Category),
		zap.Bool("anonymous", report.Report.Anonymous),
		zap.Bool("contactMe", report.Report.ContactMe),
		zap.Int("attachments", len(report.Report.Attachments)),
		zap.Time("submittedAt", report.SubmittedAt),
	)
	return nil
}

// RepositoryIntake stores each report.
type RepositoryIntake struct {
	Repo reportRepo.ReportRepository
}

func (r RepositoryIntake) Submit(ctx context.Context, report models.SubmittedReport) error {
	if _, err := r.Repo.Create(ctx, report); err != nil {
		return fmt.Errorf("RepositoryIntake: %w", err)
	}
	return nil
}

// QueueIntake enqueues each report for the intake worker.
type QueueIntake struct {
	Client *asynq.Client
}

func (q QueueIntake) Submit(ctx context.Context, report models.SubmittedReport) error {
	task, opts, err := tasks.NewReportIntakeTask(report)
	if err != nil {
		return fmt.Errorf("QueueIntake: failed to build task: %w", err)
	}
	if _, err := q.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("QueueIntake: failed to enqueue report %s: %w", report.ID, err)
	}
	return nil
}
