package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/linskybing/forms-go/internal/application"
	"github.com/linskybing/forms-go/internal/application/scheduler"
	"github.com/linskybing/forms-go/internal/config"
	"github.com/linskybing/forms-go/internal/config/db"
	"github.com/linskybing/forms-go/internal/domain/job"
	"github.com/linskybing/forms-go/internal/events"
	"github.com/linskybing/forms-go/internal/export"
	"github.com/linskybing/forms-go/internal/logging"
	"github.com/linskybing/forms-go/internal/migrations"
	"github.com/linskybing/forms-go/internal/repository"
	"github.com/linskybing/forms-go/internal/scheduler/executor"
	"github.com/linskybing/forms-go/internal/storage"
)

// The worker runs queued export jobs. Deploy it with INPROCESS_WORKER=false
// on the API.
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	logger := logging.Must(config.AppEnv, "worker")
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Initialize database connection
	db.Init()
	if err := migrations.Run(ctx, db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	settings, err := config.LoadSettings(config.SettingsFile)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	var mirror storage.Mirror = storage.NoopMirror{}
	if config.MinioEnabled {
		m, err := storage.NewMinioMirror(ctx, storage.MinioConfig{
			Endpoint:  config.MinioEndpoint,
			AccessKey: config.MinioAccessKey,
			SecretKey: config.MinioSecretKey,
			UseSSL:    config.MinioUseSSL,
			Bucket:    config.MinioBucket,
		}, logger.Named("minio"))
		if err != nil {
			log.Printf("Warning: export mirror disabled: %v", err)
		} else {
			mirror = m
		}
	}
	publisher := events.New(config.KafkaBrokers, config.KafkaTopic, logger.Named("events"))
	defer func() { _ = publisher.Close() }()

	repos := repository.NewRepositories(db.DB)
	svc := application.New(repos, application.Deps{
		Settings:  settings,
		Files:     export.NewFileStore(config.ExportDir),
		Mirror:    mirror,
		Publisher: publisher,
		Log:       logger,
	})

	registry := executor.NewExecutorRegistry()
	registry.Register(job.JobTypeExport, executor.NewExportExecutor(repos.Export, svc.Runner, repos.Job, mirror, publisher, logger.Named("executor")))
	sched := scheduler.NewScheduler(registry, repos.Job, logger.Named("scheduler"))

	log.Printf("Starting export worker (queue: %d)", sched.GetQueueSize())
	if err := sched.Start(ctx); err != nil {
		log.Printf("Scheduler error: %v", err)
	}
}
