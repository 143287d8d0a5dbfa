package leaderboard

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
	rankingKeyPrefix = "leaderboard:"
	entriesKeyPrefix = "leaderboard_entries:"

	// lossScore ranks every loss below the slowest win
	lossScore = models.MaxGuesses + 1
)

// Config holds configuration for the Redis leaderboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Optional expiry of a puzzle's leaderboard, kept forever when zero
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// storedEntry is the per-player detail kept next to the ranking
type storedEntry struct {
	PlayerName string    `json:"player_name"`
	GuessCount int       `json:"guess_count"`
	IsWin      bool      `json:"is_win"`
	FinishedAt time.Time `json:"finished_at"`
}

// NewRedis creates a new Redis-backed leaderboard repository
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

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
	}, nil
}

func rankingKey(locale, date string) string {
	return fmt.Sprintf("%s%s:%s", rankingKeyPrefix, locale, date)
}

func entriesKey(locale, date string) string {
	return fmt.Sprintf("%s%s:%s", entriesKeyPrefix, locale, date)
}

func rankScore(guessCount int, isWin bool) float64 {
	if !isWin {
		return lossScore
	}
	return float64(guessCount)
}

// RecordResult adds a player's result to the puzzle's ranking
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) (*RecordResultOutput, error) {
	if input == nil || input.PlayerID == "" || input.Date == "" || input.Locale == "" {
		return nil, errors.New("player ID, date and locale are required")
	}

	data, err := json.Marshal(storedEntry{
		PlayerName: input.PlayerName,
		GuessCount: input.GuessCount,
		IsWin:      input.IsWin,
		FinishedAt: input.FinishedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal leaderboard entry: %w", err)
	}

	ranking := rankingKey(input.Locale, input.Date)
	entries := entriesKey(input.Locale, input.Date)

	var added *redis.IntCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		added = pipe.ZAddNX(ctx, ranking, redis.Z{
			Score:  rankScore(input.GuessCount, input.IsWin),
			Member: input.PlayerID,
		})
		pipe.HSetNX(ctx, entries, input.PlayerID, data)
		if r.ttl > 0 {
			pipe.Expire(ctx, ranking, r.ttl)
			pipe.Expire(ctx, entries, r.ttl)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record leaderboard result: %w", err)
	}

	return &RecordResultOutput{
		Recorded: added.Val() == 1,
	}, nil
}

// GetLeaderboard reads a puzzle's ranking. Equal scores are ordered by player
// ID and share a rank.
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) ([]*models.LeaderboardEntry, error) {
	if input == nil || input.Date == "" || input.Locale == "" {
		return nil, errors.New("date and locale are required")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	ranked, err := r.client.ZRangeWithScores(ctx, rankingKey(input.Locale, input.Date), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	if len(ranked) == 0 {
		return []*models.LeaderboardEntry{}, nil
	}

	playerIDs := make([]string, len(ranked))
	for i, z := range ranked {
		playerIDs[i] = z.Member.(string)
	}

	details, err := r.client.HMGet(ctx, entriesKey(input.Locale, input.Date), playerIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard entries: %w", err)
	}

	result := make([]*models.LeaderboardEntry, 0, len(ranked))
	for i, z := range ranked {
		entry := &models.LeaderboardEntry{
			Rank:     i + 1,
			PlayerID: playerIDs[i],
			IsWin:    z.Score <= models.MaxGuesses,
		}
		if i > 0 && z.Score == ranked[i-1].Score {
			entry.Rank = result[i-1].Rank
		}

		if raw, ok := details[i].(string); ok {
			var stored storedEntry
			if err := json.Unmarshal([]byte(raw), &stored); err != nil {
				return nil, fmt.Errorf("failed to unmarshal leaderboard entry: %w", err)
			}
			entry.PlayerName = stored.PlayerName
			entry.GuessCount = stored.GuessCount
			entry.FinishedAt = stored.FinishedAt
		}

		result = append(result, entry)
	}

	return result, nil
}
