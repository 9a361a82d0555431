package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-frontoffice-backend/config"
	"hotel-frontoffice-backend/internal/api"
	"hotel-frontoffice-backend/internal/auth"
	"hotel-frontoffice-backend/internal/db"
	"hotel-frontoffice-backend/internal/notification"
	"hotel-frontoffice-backend/internal/store"
	"hotel-frontoffice-backend/internal/tax"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/jub0bs/fcors"
	"github.com/joho/godotenv"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "hotel-frontoffice ", log.LstdFlags)

	// Secrets may live in a local .env file
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Printf("failed to read .env: %v", err)
	}

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.NewGormStore(gormDB)
	logger.Println("data store initialized")

	authn := auth.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash)
	if cfg.Auth.AdminPasswordHash == "" {
		logger.Println("auth.admin_password_hash is empty; dashboard login is disabled")
	}

	// Housekeeping push alerts are optional
	var notifier api.Notifier
	var webpushOptions *webpush.Options
	if cfg.Push.Enabled() {
		webpushOptions = &webpush.Options{
			VAPIDPublicKey:  cfg.Push.PublicKey,
			VAPIDPrivateKey: cfg.Push.PrivateKey,
			Subscriber:      cfg.Push.Subject,
			TTL:             cfg.Push.TTL,
		}
		pool := notification.NewWorkerPool(cfg.WorkerPool.Size, appStore, webpushOptions)
		pool.Start(ctx)
		notifier = pool
		logger.Printf("notification worker pool started with %d workers", cfg.WorkerPool.Size)
	} else {
		logger.Println("VAPID keys are not configured; push notifications are disabled")
	}

	handler := api.NewHandler(appStore, tax.NewCalculator(cfg.Tax), authn, notifier, webpushOptions, cfg.Recommend.DefaultLimit)
	router := api.NewRouter(handler, cfg.Server)

	origin := fcors.FromAnyOrigin()
	if len(cfg.Server.CORSOrigins) > 0 {
		origin = fcors.FromOrigins(cfg.Server.CORSOrigins[0], cfg.Server.CORSOrigins[1:]...)
	}
	cors, err := fcors.AllowAccess(
		origin,
		fcors.WithMethods(
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		),
		fcors.WithRequestHeaders("Authorization", "Content-Type"),
	)
	if err != nil {
		logger.Fatalf("invalid CORS configuration: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: cors(router),
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
