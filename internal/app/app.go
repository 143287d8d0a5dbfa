// Package app wires the repositories and services both binaries run on.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/wordvibe/internal/common/clock"
	"github.com/KirkDiggler/wordvibe/internal/common/ratelimit"
	"github.com/KirkDiggler/wordvibe/internal/common/uuid"
	"github.com/KirkDiggler/wordvibe/internal/config"
	"github.com/KirkDiggler/wordvibe/internal/dictionary"
	"github.com/KirkDiggler/wordvibe/internal/puzzle"
	leaderboardRepo "github.com/KirkDiggler/wordvibe/internal/repositories/leaderboard"
	roundRepo "github.com/KirkDiggler/wordvibe/internal/repositories/round"
	statsRepo "github.com/KirkDiggler/wordvibe/internal/repositories/statistics"
	"github.com/KirkDiggler/wordvibe/internal/services/messaging"
	"github.com/KirkDiggler/wordvibe/internal/services/round"
	"github.com/KirkDiggler/wordvibe/internal/services/statistics"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// App holds the wired services
type App struct {
	RedisClient      *redis.Client
	Dictionary       *dictionary.Dictionary
	RoundService     round.Service
	StatsService     statistics.Service
	MessagingService messaging.Service
	GuessLimiter     *ratelimit.Limiter
}

// New connects to Redis and builds every service from cfg
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	a, err := build(redisClient, cfg)
	if err != nil {
		redisClient.Close()
		return nil, err
	}
	return a, nil
}

func build(redisClient *redis.Client, cfg *config.Config) (*App, error) {
	// Initialize repositories
	rounds, err := roundRepo.NewRedis(&roundRepo.Config{
		RedisClient: redisClient,
		RoundTTL:    30 * 24 * time.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create round repository: %w", err)
	}

	stats, err := statsRepo.NewRedis(&statsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create statistics repository: %w", err)
	}

	leaderboard, err := leaderboardRepo.NewRedis(&leaderboardRepo.Config{
		RedisClient: redisClient,
		TTL:         90 * 24 * time.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create leaderboard repository: %w", err)
	}

	dict := dictionary.New(&dictionary.Config{
		Dir: cfg.WordsDir,
	})
	locales, err := dict.Locales()
	if err != nil {
		return nil, err
	}
	log.Info().Strs("locales", locales).Str("default_locale", cfg.DefaultLocale).Msg("word lists available")

	selector, err := puzzle.New(&puzzle.Config{
		Words: dict,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create puzzle selector: %w", err)
	}

	// Initialize services
	statsSvc, err := statistics.New(&statistics.Config{
		StatsRepo: stats,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create statistics service: %w", err)
	}

	roundSvc, err := round.New(&round.Config{
		DefaultLocale: cfg.DefaultLocale,
		RoundRepo:     rounds,
		Leaderboard:   leaderboard,
		StatsService:  statsSvc,
		Dictionary:    dict,
		Selector:      selector,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create round service: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &App{
		RedisClient:      redisClient,
		Dictionary:       dict,
		RoundService:     roundSvc,
		StatsService:     statsSvc,
		MessagingService: messagingSvc,
		GuessLimiter:     ratelimit.New(cfg.GuessRatePerMinute, cfg.GuessBurst),
	}, nil
}

// Health pings Redis
func (a *App) Health(ctx context.Context) error {
	return a.RedisClient.Ping(ctx).Err()
}

// Close releases the Redis connection
func (a *App) Close() error {
	return a.RedisClient.Close()
}
