package statistics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/wordvibe/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	statisticsKeyPrefix = "stats:"

	defaultMaxRetries = 5
)

// ErrConcurrentUpdate is returned when the statistics kept changing under an update
var ErrConcurrentUpdate = errors.New("statistics were modified concurrently")

// Config holds configuration for the Redis statistics repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Optional number of compare-and-swap attempts
	MaxRetries int
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	maxRetries int
}

// NewRedis creates a new Redis-backed statistics repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		maxRetries: maxRetries,
	}, nil
}

func statisticsKey(playerID string) string {
	return fmt.Sprintf("%s%s", statisticsKeyPrefix, playerID)
}

// GetStatistics retrieves a player's statistics from Redis
func (r *redisRepository) GetStatistics(ctx context.Context, input *GetStatisticsInput) (*models.GameStatistics, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	stats, err := read(ctx, r.client, statisticsKey(input.PlayerID))
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// UpdateStatistics runs the transition inside a WATCH transaction, retrying
// when another writer got there first
func (r *redisRepository) UpdateStatistics(ctx context.Context, input *UpdateStatisticsInput) (*models.GameStatistics, error) {
	if input == nil || input.PlayerID == "" || input.Transition == nil {
		return nil, errors.New("input, player ID and transition cannot be empty")
	}

	key := statisticsKey(input.PlayerID)
	var next models.GameStatistics

	txf := func(tx *redis.Tx) error {
		current, err := read(ctx, tx, key)
		if err != nil {
			return err
		}

		next, err = input.Transition(current)
		if err != nil {
			return err
		}

		statsJSON, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to marshal statistics: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, statsJSON, 0)
			return nil
		})
		return err
	}

	for i := 0; i < r.maxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &next, nil
	}

	return nil, ErrConcurrentUpdate
}

func read(ctx context.Context, c getter, key string) (models.GameStatistics, error) {
	statsJSON, err := c.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.GameStatistics{}, nil
		}
		return models.GameStatistics{}, fmt.Errorf("failed to get statistics: %w", err)
	}

	var stats models.GameStatistics
	if err := json.Unmarshal([]byte(statsJSON), &stats); err != nil {
		return models.GameStatistics{}, fmt.Errorf("failed to unmarshal statistics: %w", err)
	}

	return stats, nil
}
