package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/wordvibe/internal/app"
	"github.com/KirkDiggler/wordvibe/internal/config"
	"github.com/KirkDiggler/wordvibe/internal/handlers/api"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.LogLevel > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}
	defer a.Close()

	handler, err := api.New(&api.Config{
		RoundService:     a.RoundService,
		StatsService:     a.StatsService,
		MessagingService: a.MessagingService,
		GuessLimiter:     a.GuessLimiter,
		Health:           a.Health,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create HTTP handler")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sc := make(chan os.Signal, 1)
		signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
		<-sc

		log.Info().Msg("Shutdown signal received, shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown")
		}
		close(idleConnsClosed)
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("Server starting")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server failed")
	}
	<-idleConnsClosed
	log.Info().Msg("Server has been shut down")
}
