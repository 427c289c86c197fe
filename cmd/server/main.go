package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	httpapi "encore-backend/internal/api/http"
	"encore-backend/internal/auth"
	"encore-backend/internal/cache"
	"encore-backend/internal/config"
	"encore-backend/internal/jobs"
	"encore-backend/internal/logger"
	"encore-backend/internal/repository/postgres"
	"encore-backend/internal/scheduler"
	"encore-backend/internal/service"
	"encore-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Encore backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if err := runMigrations(cfg); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store := postgres.NewStore(db)
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)

	photoStore, localStore, err := newPhotoStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}

	listings, err := newListingCache(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize listing cache: %v", err)
	}

	var emailSvc service.EmailService
	if cfg.Email.SendGridKey != "" {
		emailSvc = service.NewEmailService(cfg.Email.SendGridKey, cfg.Email.FromAddress, cfg.Email.FromName)
	} else {
		logger.Warn("SendGrid key not configured, applicant emails disabled")
	}

	talentSvc := service.NewTalentService(store.TalentRepository, listings)
	appSvc := service.NewApplicationService(store.ApplicationRepository, store.UserProfileRepository, photoStore, emailSvc)
	reviewSvc := service.NewReviewService(store.ApplicationRepository, store.UserProfileRepository, store.TalentRepository, talentSvc, emailSvc)

	jobRunner := jobs.NewJobRunner(store, photoStore, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	router := httpapi.NewRouter(appSvc, reviewSvc, talentSvc, verifier, localStore)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}

func runMigrations(cfg *config.Config) error {
	m, err := migrate.New("file://"+cfg.Migrations.Dir, cfg.GetDatabaseConnectionString())
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	logger.Info("Database migrations applied")
	return nil
}

// newPhotoStorage builds the configured storage backend. The local
// backend is returned separately so the router can serve its files.
func newPhotoStorage(cfg *config.Config) (storage.ObjectStorage, *storage.LocalStorage, error) {
	switch cfg.Storage.Type {
	case "", "local":
		logger.Info("Using local photo storage", "upload_dir", cfg.Storage.UploadDir)
		local, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			return nil, nil, err
		}
		return local, local, nil
	case "firebase":
		logger.Info("Using firebase photo storage", "bucket", cfg.Storage.Bucket)
		fb, err := storage.NewFirebaseStorage(context.Background(), cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		return fb, nil, nil
	}
	return nil, nil, errors.New("unknown storage type " + cfg.Storage.Type)
}

func newListingCache(cfg *config.Config) (cache.Cache[string, any], error) {
	if cfg.Cache.ProfileListSize > 0 {
		return cache.NewLRU[string, any](cfg.Cache.ProfileListSize)
	}
	return cache.NewUnbounded[string, any](), nil
}
