package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-go/internal/antispam"
	"github.com/linskybing/forms-go/internal/api/handlers"
	"github.com/linskybing/forms-go/internal/api/middleware"
	"github.com/linskybing/forms-go/internal/api/routes"
	"github.com/linskybing/forms-go/internal/application"
	"github.com/linskybing/forms-go/internal/application/scheduler"
	"github.com/linskybing/forms-go/internal/config"
	"github.com/linskybing/forms-go/internal/config/db"
	"github.com/linskybing/forms-go/internal/cron"
	"github.com/linskybing/forms-go/internal/domain/job"
	"github.com/linskybing/forms-go/internal/events"
	"github.com/linskybing/forms-go/internal/export"
	"github.com/linskybing/forms-go/internal/logging"
	"github.com/linskybing/forms-go/internal/mail"
	"github.com/linskybing/forms-go/internal/migrations"
	"github.com/linskybing/forms-go/internal/repository"
	"github.com/linskybing/forms-go/internal/scheduler/executor"
	"github.com/linskybing/forms-go/internal/storage"
	"go.uber.org/zap"
)

// @title Forms API
// @version 1.0
// @description Form builder control panel, public submit and submission export API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	logger := logging.Must(config.AppEnv, "api")
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

	var (
		tokens    antispam.TokenStore
		memTokens *antispam.MemoryStore
	)
	if config.RedisAddr == "" {
		memTokens = antispam.NewMemoryStore()
		tokens = memTokens
	} else {
		rdb, err := antispam.NewRedisClient(ctx, config.RedisAddr, config.RedisPassword, config.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer func() { _ = rdb.Close() }()
		tokens = antispam.NewRedisStore(rdb)
	}

	mirror := newMirror(ctx, logger)
	publisher := events.New(config.KafkaBrokers, config.KafkaTopic, logger.Named("events"))
	defer func() { _ = publisher.Close() }()
	if len(config.KafkaBrokers) == 0 {
		logger.Warn("no kafka brokers configured, submission mail is dropped")
	}

	files := export.NewFileStore(config.ExportDir)
	repos := repository.NewRepositories(db.DB)
	svc := application.New(repos, application.Deps{
		Settings:   settings,
		TokenStore: tokens,
		Recaptcha:  antispam.NewRecaptcha(),
		Files:      files,
		Mirror:     mirror,
		Publisher:  publisher,
		Mailer:     mail.NewEventMailer(publisher),
		Log:        logger,
	})

	if err := svc.User.SeedAdmin(ctx, config.AdminUsername, config.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	if config.InProcessWorker {
		registry := executor.NewExecutorRegistry()
		registry.Register(job.JobTypeExport, executor.NewExportExecutor(repos.Export, svc.Runner, repos.Job, mirror, publisher, logger.Named("executor")))
		sched := scheduler.NewScheduler(registry, repos.Job, logger.Named("scheduler"))
		svc.Job.SetNotifier(sched)
		go func() {
			if err := sched.Start(ctx); err != nil {
				log.Printf("Scheduler error: %v", err)
			}
		}()
	}

	// Start background tasks
	cleanup := &cron.Cleanup{
		Submissions: svc.Submission,
		Exports:     repos.Export,
		Files:       files,
	}
	if memTokens != nil {
		cleanup.Tokens = memTokens
	}
	cron.StartCleanupTask(ctx, cleanup)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(config.AllowedOrigins))
	router.Use(middleware.RequestLogger(logger.Named("http")))

	routes.RegisterRoutes(router, handlers.New(svc))

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Starting API server on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start: %v", err)
	}
}

func newMirror(ctx context.Context, logger *zap.Logger) storage.Mirror {
	if !config.MinioEnabled {
		return storage.NoopMirror{}
	}
	m, err := storage.NewMinioMirror(ctx, storage.MinioConfig{
		Endpoint:  config.MinioEndpoint,
		AccessKey: config.MinioAccessKey,
		SecretKey: config.MinioSecretKey,
		UseSSL:    config.MinioUseSSL,
		Bucket:    config.MinioBucket,
	}, logger.Named("minio"))
	if err != nil {
		log.Printf("Warning: export mirror disabled: %v", err)
		return storage.NoopMirror{}
	}
	return m
}
