package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	now    time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		TTL:         48 * time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.now = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) record(playerID, name string, guessCount int, isWin bool) bool {
	out, err := s.repo.RecordResult(context.Background(), &RecordResultInput{
		Date:       "2025-04-19",
		Locale:     "en",
		PlayerID:   playerID,
		PlayerName: name,
		GuessCount: guessCount,
		IsWin:      isWin,
		FinishedAt: s.now,
	})
	s.Require().NoError(err)
	return out.Recorded
}

func (s *RedisRepositoryTestSuite) TestEmptyLeaderboard() {
	entries, err := s.repo.GetLeaderboard(context.Background(), &GetLeaderboardInput{
		Date:   "2025-04-19",
		Locale: "en",
	})
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *RedisRepositoryTestSuite) TestRanking() {
	s.True(s.record("p-loss", "Loser", 6, false))
	s.True(s.record("p-four", "Four", 4, true))
	s.True(s.record("p-two-b", "Bea", 2, true))
	s.True(s.record("p-two-a", "Al", 2, true))
	s.True(s.record("p-quit", "Quitter", 2, false))

	entries, err := s.repo.GetLeaderboard(context.Background(), &GetLeaderboardInput{
		Date:   "2025-04-19",
		Locale: "en",
	})
	s.Require().NoError(err)
	s.Require().Len(entries, 5)

	s.Equal("p-two-a", entries[0].PlayerID)
	s.Equal("Al", entries[0].PlayerName)
	s.Equal(1, entries[0].Rank)
	s.Equal(2, entries[0].GuessCount)
	s.True(entries[0].IsWin)
	s.True(s.now.Equal(entries[0].FinishedAt))

	s.Equal("p-two-b", entries[1].PlayerID)
	s.Equal(1, entries[1].Rank, "ties share a rank")

	s.Equal("p-four", entries[2].PlayerID)
	s.Equal(3, entries[2].Rank)

	// Losses rank last whatever their guess count
	s.Equal("p-loss", entries[3].PlayerID)
	s.False(entries[3].IsWin)
	s.Equal(4, entries[3].Rank)
	s.Equal("p-quit", entries[4].PlayerID)
	s.Equal(2, entries[4].GuessCount)
	s.Equal(4, entries[4].Rank)
}

func (s *RedisRepositoryTestSuite) TestFirstResultCounts() {
	s.True(s.record("player-1", "Kirk", 5, true))
	s.False(s.record("player-1", "Kirk", 1, true))

	entries, err := s.repo.GetLeaderboard(context.Background(), &GetLeaderboardInput{
		Date:   "2025-04-19",
		Locale: "en",
	})
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(5, entries[0].GuessCount)
}

func (s *RedisRepositoryTestSuite) TestLimit() {
	s.record("a", "A", 1, true)
	s.record("b", "B", 2, true)
	s.record("c", "C", 3, true)

	entries, err := s.repo.GetLeaderboard(context.Background(), &GetLeaderboardInput{
		Date:   "2025-04-19",
		Locale: "en",
		Limit:  2,
	})
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("b", entries[1].PlayerID)
}

func (s *RedisRepositoryTestSuite) TestPuzzlesAreSeparate() {
	s.record("player-1", "Kirk", 3, true)

	for _, input := range []*GetLeaderboardInput{
		{Date: "2025-04-20", Locale: "en"},
		{Date: "2025-04-19", Locale: "es"},
	} {
		entries, err := s.repo.GetLeaderboard(context.Background(), input)
		s.Require().NoError(err)
		s.Empty(entries)
	}
}

func (s *RedisRepositoryTestSuite) TestExpiry() {
	s.record("player-1", "Kirk", 3, true)
	s.Equal(48*time.Hour, s.mr.TTL("leaderboard:en:2025-04-19"))
	s.Equal(48*time.Hour, s.mr.TTL("leaderboard_entries:en:2025-04-19"))

	s.mr.FastForward(49 * time.Hour)

	entries, err := s.repo.GetLeaderboard(context.Background(), &GetLeaderboardInput{
		Date:   "2025-04-19",
		Locale: "en",
	})
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	ctx := context.Background()

	_, err := s.repo.RecordResult(ctx, nil)
	s.Error(err)

	_, err = s.repo.RecordResult(ctx, &RecordResultInput{PlayerID: "p", Locale: "en"})
	s.Error(err)

	_, err = s.repo.GetLeaderboard(ctx, &GetLeaderboardInput{Date: "2025-04-19"})
	s.Error(err)

	_, err = NewRedis(nil)
	s.Error(err)
}
