package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver

	"calendar-connect/config"
	_ "calendar-connect/docs" // Swagger docs
	"calendar-connect/internal/httpserver"
	"calendar-connect/pkg/encrypter"
	"calendar-connect/pkg/gcalendar"
	"calendar-connect/pkg/googleauth"
	"calendar-connect/pkg/log"
)

// @title       Calendar Connect API
// @description Google Calendar integration with merged event views and availability suggestions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Connect...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open postgres connection: ", err)
		return
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error(ctx, "Failed to ping postgres: ", err)
		return
	}

	// 4. Token encryption
	enc, err := encrypter.New([]byte(cfg.Encryption.Key))
	if err != nil {
		logger.Error(ctx, "Failed to initialize token encrypter: ", err)
		return
	}

	// 5. Google OAuth + Calendar client
	flow := googleauth.New(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)

	gcalClient := gcalendar.New(gcalendar.Config{
		Cache:       gcalendar.NewLRUCache(cfg.Cache.Size, cfg.Cache.TTL),
		CacheEvents: cfg.Cache.CacheEvents,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Config:      cfg,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		Encrypter:   enc,
		OAuthFlow:   flow,
		GCalClient:  gcalClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
