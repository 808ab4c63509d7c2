package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homenest-backend/internal/config"
	"homenest-backend/internal/database"
	"homenest-backend/internal/handlers"
	"homenest-backend/internal/logger"
	"homenest-backend/internal/repository"
	"homenest-backend/internal/router"

	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console", os.Stderr)
		bootLog.Fatal().Err(err).Msg("❌ Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Refuse to serve against a store we could not reach.
	db, err := database.Connect(ctx, cfg.URI(), cfg.DBName, cfg.ConnectTimeout)
	if err != nil {
		log.Fatal().Err(err).Str("database", cfg.DBName).Msg("❌ Failed to connect to MongoDB")
	}
	log.Info().Str("database", db.Name()).Msg("✅ Connected to MongoDB")

	sliderRepo := repository.NewSliderRepo(db)
	propertyRepo := repository.NewPropertyRepo(db)
	reviewRepo := repository.NewReviewRepo(db)

	ensureIndexes(ctx, log, propertyRepo, reviewRepo)

	h := router.Handlers{
		Sliders:    handlers.NewSliderHandler(sliderRepo, db.Name()),
		Properties: handlers.NewPropertyHandler(propertyRepo),
		Reviews:    handlers.NewReviewHandler(reviewRepo),
		Health:     handlers.NewHealthHandler(db),
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.New(h, log, cfg.AllowedOrigins()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("🚀 HomeNest server starting")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("❌ Server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down HTTP server")
	}
	if err := db.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to disconnect from MongoDB")
	}
	log.Info().Msg("server stopped")
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// ensureIndexes logs index failures and carries on.
func ensureIndexes(ctx context.Context, log zerolog.Logger, repos ...indexer) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, repo := range repos {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("⚠️  failed to create indexes")
		}
	}
}
