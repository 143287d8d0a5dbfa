package round

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/wordvibe/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roundKeyPrefix       = "round:"
	activeRoundKeyPrefix = "active_round:"

	defaultMaxRetries = 5
)

var (
	// ErrRoundNotFound is returned when a round is not found
	ErrRoundNotFound = errors.New("round not found")

	// ErrConcurrentUpdate is returned when a round kept changing under an update
	ErrConcurrentUpdate = errors.New("round was modified concurrently")
)

// Config holds configuration for the Redis round repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Optional expiry for round keys, zero keeps them forever
	RoundTTL time.Duration

	// Optional number of attempts for UpdateRound
	MaxRetries int
}

// getter is satisfied by both the client and a WATCH transaction
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	ttl        time.Duration
	maxRetries int
}

// NewRedis creates a new Redis-backed round repository
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
		ttl:        cfg.RoundTTL,
		maxRetries: maxRetries,
	}, nil
}

func roundKey(id string) string {
	return fmt.Sprintf("%s%s", roundKeyPrefix, id)
}

func activeRoundKey(playerID string) string {
	return fmt.Sprintf("%s%s", activeRoundKeyPrefix, playerID)
}

// SaveRound persists a round to Redis
func (r *redisRepository) SaveRound(ctx context.Context, input *SaveRoundInput) error {
	if input == nil || input.Round == nil {
		return errors.New("input and round cannot be nil")
	}
	if input.Round.ID == "" {
		return errors.New("round ID cannot be empty")
	}

	current, err := r.activeRoundID(ctx, r.client, input.Round.PlayerID)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	if err := r.write(ctx, pipe, input.Round, current); err != nil {
		return err
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}

	return nil
}

// GetRound retrieves a round by ID from Redis
func (r *redisRepository) GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error) {
	if input == nil || input.RoundID == "" {
		return nil, errors.New("input and round ID cannot be empty")
	}

	return r.read(ctx, r.client, input.RoundID)
}

// GetActiveRound retrieves a player's in-progress round from Redis
func (r *redisRepository) GetActiveRound(ctx context.Context, input *GetActiveRoundInput) (*models.Round, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	roundID, err := r.activeRoundID(ctx, r.client, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if roundID == "" {
		return nil, ErrRoundNotFound
	}

	round, err := r.read(ctx, r.client, roundID)
	if err != nil {
		return nil, err
	}

	// The index can outlive the round when the round key expires
	if !round.Status.IsInProgress() {
		return nil, ErrRoundNotFound
	}

	return round, nil
}

// UpdateRound reads, mutates and writes a round inside a WATCH transaction
func (r *redisRepository) UpdateRound(ctx context.Context, input *UpdateRoundInput) (*models.Round, error) {
	if input == nil || input.RoundID == "" || input.Update == nil {
		return nil, errors.New("input, round ID and update cannot be empty")
	}

	key := roundKey(input.RoundID)
	var updated *models.Round

	txf := func(tx *redis.Tx) error {
		round, err := r.read(ctx, tx, input.RoundID)
		if err != nil {
			return err
		}

		// The active index is guarded by the same transaction
		if round.PlayerID != "" {
			if err := tx.Watch(ctx, activeRoundKey(round.PlayerID)).Err(); err != nil {
				return fmt.Errorf("failed to watch active round: %w", err)
			}
		}
		current, err := r.activeRoundID(ctx, tx, round.PlayerID)
		if err != nil {
			return err
		}

		if err := input.Update(round); err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return r.write(ctx, pipe, round, current)
		})
		if err != nil {
			return err
		}

		updated = round
		return nil
	}

	for i := 0; i < r.maxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	return nil, ErrConcurrentUpdate
}

// DeleteRound removes a round from Redis
func (r *redisRepository) DeleteRound(ctx context.Context, input *DeleteRoundInput) error {
	if input == nil || input.RoundID == "" {
		return errors.New("input and round ID cannot be empty")
	}

	round, err := r.read(ctx, r.client, input.RoundID)
	if err != nil {
		return err
	}

	current, err := r.activeRoundID(ctx, r.client, round.PlayerID)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, roundKey(input.RoundID))
	if current == round.ID {
		pipe.Del(ctx, activeRoundKey(round.PlayerID))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete round: %w", err)
	}

	return nil
}

// write queues the round and its active index; current is the round ID the
// index held when the caller read it
func (r *redisRepository) write(ctx context.Context, pipe redis.Pipeliner, round *models.Round, current string) error {
	roundJSON, err := json.Marshal(round)
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	pipe.Set(ctx, roundKey(round.ID), roundJSON, r.ttl)

	if round.PlayerID == "" {
		return nil
	}

	switch {
	case round.Status.IsInProgress():
		pipe.Set(ctx, activeRoundKey(round.PlayerID), round.ID, r.ttl)
	case current == round.ID:
		pipe.Del(ctx, activeRoundKey(round.PlayerID))
	}

	return nil
}

func (r *redisRepository) read(ctx context.Context, c getter, roundID string) (*models.Round, error) {
	roundJSON, err := c.Get(ctx, roundKey(roundID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	var round models.Round
	if err := json.Unmarshal([]byte(roundJSON), &round); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round: %w", err)
	}
	if round.KeyStatuses == nil {
		round.KeyStatuses = models.NewKeyStatusMap()
	}

	return &round, nil
}

func (r *redisRepository) activeRoundID(ctx context.Context, c getter, playerID string) (string, error) {
	if playerID == "" {
		return "", nil
	}

	id, err := c.Get(ctx, activeRoundKey(playerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get active round: %w", err)
	}

	return id, nil
}
