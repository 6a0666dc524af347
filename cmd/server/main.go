package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "library-backend/internal/api/http"
	"library-backend/internal/clock"
	"library-backend/internal/config"
	"library-backend/internal/logger"
	"library-backend/internal/repository/postgres"
	"library-backend/internal/security"
	"library-backend/internal/service"
	"library-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Library Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	tokenManager := security.NewTokenManager(cfg.Session.Secret, sessionTTL)

	// Initialize Storage Service
	logger.Info("Using local image storage", "upload_dir", cfg.Storage.UploadDir)
	assetStore, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize local storage", "error", err)
		log.Fatalf("Failed to initialize local storage: %v", err)
	}

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	bookSvc := service.NewBookService(store.BookRepository, assetStore)
	authorSvc := service.NewAuthorService(store.AuthorRepository)
	genreSvc := service.NewGenreService(store.GenreRepository, store.BookRepository)
	memberSvc := service.NewMemberService(store.MemberRepository, assetStore)
	borrowalSvc := service.NewBorrowalService(store.BorrowalRepository, clock.System(), service.BorrowalConfig{
		PeriodDays:          cfg.Loan.PeriodDays,
		FineRatePerDayCents: cfg.Loan.FineRatePerDayCents,
		StatsRecentLimit:    cfg.Loan.StatsRecentLimit,
	})

	// Initialize HTTP handlers
	maxPhotoBytes := cfg.Storage.MaxFileSizeMB << 20
	handlers := httpapi.Handlers{
		Auth:      httpapi.NewAuthHandler(authSvc, cfg.Session.CookieName, sessionTTL, cfg.Session.SecureCookies),
		Book:      httpapi.NewBookHandler(bookSvc, maxPhotoBytes),
		Author:    httpapi.NewAuthorHandler(authorSvc),
		Genre:     httpapi.NewGenreHandler(genreSvc),
		Member:    httpapi.NewMemberHandler(memberSvc, maxPhotoBytes),
		Borrowal:  httpapi.NewBorrowalHandler(borrowalSvc),
		Asset:     httpapi.NewAssetHandler(assetStore),
		AuthMW:    httpapi.NewAuthMiddleware(tokenManager, cfg.Session.CookieName),
		LoginRate: httpapi.NewRateLimiter(1, 5),
	}
	router := httpapi.NewRouter(handlers)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
