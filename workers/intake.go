package workers

import (
	"context"
	"fmt"
	"time"

	"civicjustice/config"
	"civicjustice/models"
	"civicjustice/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReportSink is where the worker delivers reports taken off the queue.
type ReportSink interface {
	Submit(ctx context.Context, report models.SubmittedReport) error
}

// IntakeWorker consumes report intake tasks.
type IntakeWorker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

// RedisOpt returns the asynq connection settings for the intake queue.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewIntakeWorker builds a worker that hands each queued report to sink.
func NewIntakeWorker(sink ReportSink, logger *zap.Logger) *IntakeWorker {
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReportIntake, HandleIntakeTask(sink, logger))

	return &IntakeWorker{srv: srv, mux: mux, logger: logger}
}

// Start runs the worker in the background, retrying a failed start with a growing delay.
func (w *IntakeWorker) Start() {
	go func() {
		w.logger.Info("[IntakeWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.srv.Start(w.mux)
			if err == nil {
				return
			}
			w.logger.Warn("[IntakeWorker] Failed to start worker",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				w.logger.Error("[IntakeWorker] Max retry attempts reached, queued reports will not be processed")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *IntakeWorker) Shutdown() {
	w.srv.Shutdown()
}

// HandleIntakeTask decodes a queued report and delivers it. A malformed payload is not retried.
func HandleIntakeTask(sink ReportSink, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		report, err := tasks.ParseReportIntakeTask(task)
		if err != nil {
			logger.Error("[IntakeHandler] Invalid payload", zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		if err := sink.Submit(ctx, report); err != nil {
			logger.Warn("[IntakeHandler] Failed to deliver report", zap.String("reportID", report.ID), zap.Error(err))
			return err
		}
		logger.Debug("[IntakeHandler] Report delivered", zap.String("reportID", report.ID))
		return nil
	}
}
