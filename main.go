package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"civicjustice/config"
	"civicjustice/cron"
	"civicjustice/database"
	constitutionRepo "civicjustice/database/repository/constitution"
	draftRepo "civicjustice/database/repository/draft"
	lawyerRepo "civicjustice/database/repository/lawyer"
	reportRepo "civicjustice/database/repository/report"
	"civicjustice/handlers"
	"civicjustice/middleware"
	"civicjustice/routes"
	"civicjustice/services/constitution"
	"civicjustice/services/lawyer"
	"civicjustice/services/report"
	"civicjustice/services/speech"
	"civicjustice/services/storage"
	"civicjustice/utils"
	"civicjustice/workers"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	healthChecks := map[string]utils.Pinger{}

	// Draft store.
	drafts := buildDraftRepo(ctx, logger, healthChecks)

	// Report intake.
	intake, worker, closeIntake := buildIntake(logger, healthChecks)
	if worker != nil {
		worker.Start()
	}

	// services.
	lawyerService := lawyer.NewDefaultLawyerService(lawyerRepo.NewStaticLawyerRepo())
	constitutionService := constitution.NewDefaultConstitutionService(constitutionRepo.NewStaticConstitutionRepo())
	reportService := report.NewDefaultReportService(drafts, intake, config.AppConfig.UploadDelay, logger)

	if url := config.AppConfig.CloudinaryURL; url != "" {
		cld, err := storage.NewCloudinaryStorage(url)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
		}
		reportService.Storage = cld
		logger.Info("Attachment storage enabled", zap.String("backend", "cloudinary"))
	}

	var transcriber *speech.GoogleTranscriber
	if saFile := config.AppConfig.GoogleServiceAccountFile; saFile != "" {
		t, err := speech.NewGoogleTranscriber(ctx, saFile)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize speech transcriber: %v", err)
		}
		transcriber = t
		reportService.Transcriber = t
		logger.Info("Audio transcription enabled")
	}

	utils.StartHealthMonitor(ctx, 30*time.Second, healthChecks)

	lawyerHandler := handlers.NewLawyerHandler(lawyerService)
	constitutionHandler := handlers.NewConstitutionHandler(constitutionService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Page endpoints.
		HomeHandler:     handlers.HomeHandler,
		NotFoundHandler: handlers.NotFoundHandler,
		HealthHandler:   handlers.HealthHandler,

		// Lawyer directory endpoints.
		ListLawyersHandler: lawyerHandler.ListLawyersHandler,
		GetLawyerHandler:   lawyerHandler.GetLawyerHandler,

		// Constitution endpoints.
		BrowseConstitutionHandler: constitutionHandler.BrowseConstitutionHandler,
		GetChapterHandler:         constitutionHandler.GetChapterHandler,

		// Report endpoints.
		ReportFormHandler:       reportHandler.ReportFormHandler,
		SubmitReportHandler:     reportHandler.SubmitReportHandler,
		CreateDraftHandler:      reportHandler.CreateDraftHandler,
		GetDraftHandler:         reportHandler.GetDraftHandler,
		UpdateDraftHandler:      reportHandler.UpdateDraftHandler,
		DiscardDraftHandler:     reportHandler.DiscardDraftHandler,
		AddAttachmentHandler:    reportHandler.AddAttachmentHandler,
		RemoveAttachmentHandler: reportHandler.RemoveAttachmentHandler,
		ToggleRecordingHandler:  reportHandler.ToggleRecordingHandler,
		SubmitDraftHandler:      reportHandler.SubmitDraftHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	limiter := middleware.NewRateLimiter(config.AppConfig.MaxRequestsPerMin, 10*time.Minute)
	go cron.StartSweeper(ctx, "ratelimit", limiter, time.Minute, logger)
	router.Use(limiter.Middleware())

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	<-ctx.Done()
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	reportService.Wait()
	closeIntake()
	if worker != nil {
		worker.Shutdown()
	}
	if transcriber != nil {
		if err := transcriber.Close(); err != nil {
			logger.Warn("main: failed to close speech client", zap.Error(err))
		}
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// buildDraftRepo picks the draft store named by DRAFT_STORE.
func buildDraftRepo(ctx context.Context, logger *zap.Logger, healthChecks map[string]utils.Pinger) draftRepo.DraftRepository {
	ttl := config.AppConfig.DraftTTL
	switch config.AppConfig.DraftStore {
	case "redis":
		client, err := utils.GetDraftCacheClient()
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		repo := draftRepo.NewRedisDraftRepo(client, ttl)
		healthChecks["redis"] = repo
		logger.Info("Draft store ready", zap.String("backend", "redis"))
		return repo
	case "memory", "":
		repo := draftRepo.NewMemoryDraftRepo(ttl)
		if ttl > 0 {
			go cron.StartSweeper(ctx, "drafts", repo, ttl/4, logger)
		}
		logger.Info("Draft store ready", zap.String("backend", "memory"))
		return repo
	default:
		logger.Sugar().Fatalf("main: unknown DRAFT_STORE %q", config.AppConfig.DraftStore)
		return nil
	}
}

// buildIntake picks the intake sink named by INTAKE_SINK. With "queue", reports are enqueued and
// a worker in this process delivers them to INTAKE_QUEUE_TARGET.
func buildIntake(logger *zap.Logger, healthChecks map[string]utils.Pinger) (report.IntakeSink, *workers.IntakeWorker, func()) {
	noop := func() {}
	switch config.AppConfig.IntakeSink {
	case "queue":
		target := directSink(config.AppConfig.IntakeQueueTarget, logger, healthChecks)
		client := asynq.NewClient(workers.RedisOpt())
		worker := workers.NewIntakeWorker(target, logger)
		logger.Info("Report intake ready", zap.String("sink", "queue"), zap.String("target", config.AppConfig.IntakeQueueTarget))
		return report.QueueIntake{Client: client}, worker, func() {
			if err := client.Close(); err != nil {
				logger.Warn("main: failed to close queue client", zap.Error(err))
			}
		}
	default:
		sink := directSink(config.AppConfig.IntakeSink, logger, healthChecks)
		logger.Info("Report intake ready", zap.String("sink", config.AppConfig.IntakeSink))
		return sink, nil, noop
	}
}

func directSink(kind string, logger *zap.Logger, healthChecks map[string]utils.Pinger) report.IntakeSink {
	switch kind {
	case "mongo":
		if database.MongoClient == nil {
			if err := database.InitDB(); err != nil {
				logger.Sugar().Fatalf("main: %v", err)
			}
			healthChecks["mongo"] = utils.PingFunc(database.Ping)
		}
		repo, err := reportRepo.NewMongoReportRepo()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to prepare report collection: %v", err)
		}
		return report.RepositoryIntake{Repo: repo}
	case "log", "":
		return report.LogIntake{Logger: logger.Named("intake")}
	default:
		logger.Sugar().Fatalf("main: unknown intake sink %q", kind)
		return nil
	}
}
