package round

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/wordvibe/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
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
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newRound(id, playerID string) *models.Round {
	return &models.Round{
		ID:       id,
		PlayerID: playerID,
		Solution: models.Solution{
			Word:    "crane",
			Locale:  "en",
			IsDaily: true,
			Date:    "2025-04-05",
		},
		KeyStatuses: models.NewKeyStatusMap(),
		Status:      models.RoundStatusInProgress,
		CreatedAt:   s.testNow,
		UpdatedAt:   s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRound() {
	round := s.newRound("round-1", "player-1")
	guess, err := models.GuessFromWord("stare")
	s.Require().NoError(err)
	s.Require().NoError(guess.Finalize([models.WordLength]models.MatchStatus{
		models.MatchStatusAbsent, models.MatchStatusAbsent, models.MatchStatusCorrect,
		models.MatchStatusPresent, models.MatchStatusCorrect,
	}))
	round.Guesses[0] = guess
	round.CurrentRow = 1
	round.KeyStatuses.Apply(guess)

	err = s.repo.SaveRound(context.Background(), &SaveRoundInput{Round: round})
	s.Require().NoError(err)

	got, err := s.repo.GetRound(context.Background(), &GetRoundInput{RoundID: "round-1"})
	s.Require().NoError(err)

	s.Equal("player-1", got.PlayerID)
	s.Equal(round.Solution, got.Solution)
	s.Equal(round.Guesses, got.Guesses)
	s.Equal(1, got.CurrentRow)
	s.Equal(models.MatchStatusCorrect, got.KeyStatuses.Status("a"))
	s.Equal(models.MatchStatusPresent, got.KeyStatuses.Status("r"))
	s.Equal(s.testNow.Unix(), got.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetRoundNotFound() {
	_, err := s.repo.GetRound(context.Background(), &GetRoundInput{RoundID: "missing"})
	s.ErrorIs(err, ErrRoundNotFound)

	_, err = s.repo.GetRound(context.Background(), &GetRoundInput{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestActiveRoundFollowsStatus() {
	round := s.newRound("round-1", "player-1")
	s.Require().NoError(s.repo.SaveRound(context.Background(), &SaveRoundInput{Round: round}))

	active, err := s.repo.GetActiveRound(context.Background(), &GetActiveRoundInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal("round-1", active.ID)

	stored, err := s.mr.Get("active_round:player-1")
	s.Require().NoError(err)
	s.Equal("round-1", stored)

	round.Status = models.RoundStatusWon
	s.Require().NoError(s.repo.SaveRound(context.Background(), &SaveRoundInput{Round: round}))

	_, err = s.repo.GetActiveRound(context.Background(), &GetActiveRoundInput{PlayerID: "player-1"})
	s.ErrorIs(err, ErrRoundNotFound)
	s.False(s.mr.Exists(activeRoundKey("player-1")))
}

func (s *RedisRepositoryTestSuite) TestFinishingOldRoundKeepsNewerActive() {
	old := s.newRound("round-1", "player-1")
	s.Require().NoError(s.repo.SaveRound(context.Background(), &SaveRoundInput{Round: old}))

	newer := s.newRound("round-2", "player-1")
	s.Require().NoError(s.repo.SaveRound(context.Background(), &SaveRoundInput{Round: newer}))

	old.Status = models.RoundStatusLost
	s.Require().NoError(s.repo.SaveRound(context.Background(), &SaveRoundInput{Round: old}))

	active, err := s.repo.GetActiveRound(context.Background(), &GetActiveRoundInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal("round-2", active.ID)
}

func (s *RedisRepositoryTestSuite) TestUpdateRound() {
	s.Require().NoError(s.repo.SaveRound(context.Background(), &SaveRoundInput{Round: s.newRound("round-1", "player-1")}))

	updated, err := s.repo.UpdateRound(context.Background(), &UpdateRoundInput{
		RoundID: "round-1",
		Update: func(round *models.Round) error {
			round.CurrentRow = 3
			round.Status = models.RoundStatusLost
			return nil
		},
	})
	s.Require().NoError(err)
	s.Equal(3, updated.CurrentRow)

	got, err := s.repo.GetRound(context.Background(), &GetRoundInput{RoundID: "round-1"})
	s.Require().NoError(err)
	s.Equal(models.RoundStatusLost, got.Status)

	_, err = s.repo.GetActiveRound(context.Background(), &GetActiveRoundInput{PlayerID: "player-1"})
	s.ErrorIs(err, ErrRoundNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateRoundAbortsOnError() {
	s.Require().NoError(s.repo.SaveRound(context.Background(), &SaveRoundInput{Round: s.newRound("round-1", "player-1")}))

	boom := errors.New("boom")
	_, err := s.repo.UpdateRound(context.Background(), &UpdateRoundInput{
		RoundID: "round-1",
		Update: func(round *models.Round) error {
			round.CurrentRow = 5
			return boom
		},
	})
	s.ErrorIs(err, boom)

	got, err := s.repo.GetRound(context.Background(), &GetRoundInput{RoundID: "round-1"})
	s.Require().NoError(err)
	s.Equal(0, got.CurrentRow)
}

func (s *RedisRepositoryTestSuite) TestUpdateRoundNotFound() {
	_, err := s.repo.UpdateRound(context.Background(), &UpdateRoundInput{
		RoundID: "missing",
		Update:  func(*models.Round) error { return nil },
	})
	s.ErrorIs(err, ErrRoundNotFound)
}

func (s *RedisRepositoryTestSuite) TestConcurrentUpdatesAreSerialized() {
	s.Require().NoError(s.repo.SaveRound(context.Background(), &SaveRoundInput{Round: s.newRound("round-1", "player-1")}))

	repo, err := NewRedis(&Config{RedisClient: s.client, MaxRetries: 100})
	s.Require().NoError(err)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.UpdateRound(context.Background(), &UpdateRoundInput{
				RoundID: "round-1",
				Update: func(round *models.Round) error {
					round.CurrentRow++
					return nil
				},
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	got, err := s.repo.GetRound(context.Background(), &GetRoundInput{RoundID: "round-1"})
	s.Require().NoError(err)
	s.Equal(5, got.CurrentRow)
}

func (s *RedisRepositoryTestSuite) TestRoundTTL() {
	repo, err := NewRedis(&Config{RedisClient: s.client, RoundTTL: time.Hour})
	s.Require().NoError(err)

	s.Require().NoError(repo.SaveRound(context.Background(), &SaveRoundInput{Round: s.newRound("round-1", "player-1")}))
	s.Equal(time.Hour, s.mr.TTL(roundKey("round-1")))

	s.mr.FastForward(2 * time.Hour)
	_, err = repo.GetRound(context.Background(), &GetRoundInput{RoundID: "round-1"})
	s.ErrorIs(err, ErrRoundNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteRound() {
	s.Require().NoError(s.repo.SaveRound(context.Background(), &SaveRoundInput{Round: s.newRound("round-1", "player-1")}))

	s.Require().NoError(s.repo.DeleteRound(context.Background(), &DeleteRoundInput{RoundID: "round-1"}))

	_, err := s.repo.GetRound(context.Background(), &GetRoundInput{RoundID: "round-1"})
	s.ErrorIs(err, ErrRoundNotFound)
	_, err = s.repo.GetActiveRound(context.Background(), &GetActiveRoundInput{PlayerID: "player-1"})
	s.ErrorIs(err, ErrRoundNotFound)

	err = s.repo.DeleteRound(context.Background(), &DeleteRoundInput{RoundID: "round-1"})
	s.ErrorIs(err, ErrRoundNotFound)
}
