package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"doclib/internal/config"
	"doclib/internal/database"
	"doclib/internal/database/migration"
	handlers "doclib/internal/http/handler"
	"doclib/internal/logging"
	"doclib/internal/otel"
	"doclib/internal/repository"
	"doclib/internal/repository/memory"
	"doclib/internal/repository/postgres"
	"doclib/internal/seed"
	"doclib/internal/service"
	"doclib/internal/storage"
)

// @title Document Library API
// @version 1.0
// @description User registration and a PDF document catalog with upload, search, download and delete.
// @BasePath /
func main() {
	cfg := config.Load()
	log := logging.New(cfg.AppName, cfg.AppEnv, cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg *config.AppConfig, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.AppName, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.WithError(err).Warn("tracing shutdown failed")
		}
	}()

	records, err := openRecords(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer records.close()

	objStore, err := openStorage(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("init file storage: %w", err)
	}

	userSvc := service.NewUserService(records.users, log.WithField("component", "users"))
	docSvc := service.NewDocumentService(objStore, records.docs,
		service.WithMaxUploadBytes(cfg.Upload.MaxBytes),
		service.WithLogger(log.WithField("component", "documents")),
	)
	statsSvc := service.NewStatsService(records.users, records.docs, service.DemoDownloads{})

	if cfg.SeedSample {
		if _, err := seed.Run(ctx, userSvc, docSvc, log); err != nil {
			return fmt.Errorf("seed sample data: %w", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := handlers.Deps{Users: userSvc, Documents: docSvc, Stats: statsSvc}
	if records.db != nil {
		deps.DB = records.db
	}
	app, err := newServer(cfg, log, deps, reg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	return app.ShutdownWithTimeout(15 * time.Second)
}

// recordStore bundles the repositories of the configured record backend.
type recordStore struct {
	users repository.UserRepository
	docs  repository.DocumentRepository
	db    *sql.DB
}

func (r recordStore) close() {
	if r.db != nil {
		r.db.Close()
	}
}

func openRecords(ctx context.Context, cfg *config.AppConfig, log *logrus.Logger) (recordStore, error) {
	switch cfg.RecordBackend {
	case config.RecordBackendMemory:
		log.Info("using in-memory record store; records are lost on restart")
		store := memory.New()
		return recordStore{users: store.Users(), docs: store.Documents()}, nil
	case config.RecordBackendPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database, log)
		if err != nil {
			return recordStore{}, fmt.Errorf("connect to database: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			db.Close()
			return recordStore{}, fmt.Errorf("migrate database: %w", err)
		}
		return recordStore{users: postgres.NewUserPostgres(db), docs: postgres.NewDocumentPostgres(db), db: db}, nil
	default:
		return recordStore{}, fmt.Errorf("unknown RECORD_BACKEND %q", cfg.RecordBackend)
	}
}

func openStorage(ctx context.Context, cfg *config.AppConfig, log *logrus.Logger) (storage.Storage, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendLocal:
		return storage.NewLocal(cfg.Storage.Root, log)
	case config.StorageBackendMinIO:
		return storage.NewMinIO(ctx, cfg.Storage.MinIO, log)
	case config.StorageBackendGCS:
		return storage.NewGCS(ctx, cfg.Storage.GCS, log)
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.Storage.Backend)
	}
}
