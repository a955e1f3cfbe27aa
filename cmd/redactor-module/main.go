package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/helper"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/logger"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/logstore"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/route"
)

func main() {
	switch os.Getenv("APP_ENV") {
	case "production":
		helper.SetServerConfig("config/.env.production")
	case "staging":
		helper.SetServerConfig("config/.env.staging")
	default:
		helper.SetServerConfig("config/.env.dev")
	}

	loc := helper.LoadTimezone(helper.GetEnv("LOG_TIMEZONE", "UTC"))
	logDir := helper.GetEnv("LOG_DIR", "logs")

	logger.Init("pdf-processing", logDir, loc)

	store := logstore.NewStore(logDir, loc, logger.AppLogger)

	cleaner := logstore.NewCleaner(store, helper.GetEnvInt("LOG_RETENTION_DAYS", 3), logger.AppLogger)
	cleaner.Start()

	router := route.InitRoutes(store)

	server := &http.Server{
		Addr:    ":" + helper.GetEnv("SERVER_PORT", "8080"),
		Handler: router,
	}

	go func() {
		logger.AppLogger.Info().Str("addr", server.Addr).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.AppLogger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.AppLogger.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.AppLogger.Error().Err(err).Msg("Forced shutdown")
	}

	cleaner.Stop()

	logger.AppLogger.Info().Msg("Server exited gracefully")
}
