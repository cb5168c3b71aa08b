package tasks

import (
	"encoding/json"
	"fmt"

	"civicjustice/models"

	"github.com/hibiken/asynq"
)

const TypeReportIntake = "report:intake"

// NewReportIntakeTask wraps a submitted report for the intake queue.
func NewReportIntakeTask(report models.SubmittedReport) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(report)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReportIntake, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.TaskID(report.ID)}

	return task, opts, nil
}

// ParseReportIntakeTask decodes the payload written by NewReportIntakeTask.
func ParseReportIntakeTask(task *asynq.Task) (models.SubmittedReport, error) {
	var report models.SubmittedReport
	if err := json.Unmarshal(task.Payload(), &report); err != nil {
		return report, fmt.Errorf("invalid %s payload: %w", TypeReportIntake, err)
	}
	return report, nil
}
