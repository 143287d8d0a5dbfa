package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/KirkDiggler/wordvibe/internal/common/clock"
	"github.com/KirkDiggler/wordvibe/internal/common/ratelimit"
	"github.com/KirkDiggler/wordvibe/internal/common/uuid"
	"github.com/KirkDiggler/wordvibe/internal/dictionary"
	"github.com/KirkDiggler/wordvibe/internal/puzzle"
	leaderboardRepo "github.com/KirkDiggler/wordvibe/internal/repositories/leaderboard"
	roundRepo "github.com/KirkDiggler/wordvibe/internal/repositories/round"
	statsRepo "github.com/KirkDiggler/wordvibe/internal/repositories/statistics"
	"github.com/KirkDiggler/wordvibe/internal/services/messaging"
	"github.com/KirkDiggler/wordvibe/internal/services/round"
	"github.com/KirkDiggler/wordvibe/internal/services/statistics"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

const wordList = `{
	"answers": ["crane"],
	"guesses": ["stare", "moist", "trace", "cigar", "react"]
}`

type HandlerTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client

	roundService round.Service
	statsService statistics.Service
	messages     messaging.Service
	router       *gin.Engine

	testPlayerID string
}

func (s *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *HandlerTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	rounds, err := roundRepo.NewRedis(&roundRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	stats, err := statsRepo.NewRedis(&statsRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	leaderboard, err := leaderboardRepo.NewRedis(&leaderboardRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	dict := dictionary.NewFromFS(fstest.MapFS{
		"en.json": &fstest.MapFile{Data: []byte(wordList)},
	})
	selector, err := puzzle.New(&puzzle.Config{Words: dict, Seed: 1})
	s.Require().NoError(err)

	s.statsService, err = statistics.New(&statistics.Config{StatsRepo: stats})
	s.Require().NoError(err)

	s.roundService, err = round.New(&round.Config{
		DefaultLocale: "en",
		RoundRepo:     rounds,
		Leaderboard:   leaderboard,
		StatsService:  s.statsService,
		Dictionary:    dict,
		Selector:      selector,
		Clock:         clock.Fixed(time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)),
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)

	s.messages, err = messaging.NewService(&messaging.ServiceConfig{Seed: 1})
	s.Require().NoError(err)

	s.router = s.newRouter(nil, nil)
	s.testPlayerID = "player-1"
}

func (s *HandlerTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) newRouter(limiter *ratelimit.Limiter, health func(context.Context) error) *gin.Engine {
	h, err := New(&Config{
		RoundService:     s.roundService,
		StatsService:     s.statsService,
		MessagingService: s.messages,
		GuessLimiter:     limiter,
		Health:           health,
	})
	s.Require().NoError(err)
	return h.Router()
}

func (s *HandlerTestSuite) do(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](s *HandlerTestSuite, rec *httptest.ResponseRecorder) T {
	var out T
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (s *HandlerTestSuite) startRound(body map[string]any) roundResponse {
	rec := s.do(s.router, http.MethodPost, "/rounds", body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return decode[startRoundResponse](s, rec).Round
}

func (s *HandlerTestSuite) guess(roundID, word string) *httptest.ResponseRecorder {
	return s.do(s.router, http.MethodPost, "/rounds/"+roundID+"/guesses", map[string]any{
		"playerId": s.testPlayerID,
		"word":     word,
	})
}

func (s *HandlerTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{StatsService: s.statsService, MessagingService: s.messages})
	s.ErrorIs(err, ErrNilRoundService)

	_, err = New(&Config{RoundService: s.roundService, MessagingService: s.messages})
	s.ErrorIs(err, ErrNilStatsService)

	_, err = New(&Config{RoundService: s.roundService, StatsService: s.statsService})
	s.ErrorIs(err, ErrNilMessagingService)
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.do(s.router, http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())

	failing := s.newRouter(nil, func(context.Context) error { return errors.New("redis down") })
	rec = s.do(failing, http.MethodGet, "/health", nil)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *HandlerTestSuite) TestStartRoundHidesSolution() {
	rec := s.do(s.router, http.MethodPost, "/rounds", map[string]any{
		"playerId": s.testPlayerID,
		"daily":    true,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	resp := decode[startRoundResponse](s, rec)
	s.NotEmpty(resp.Round.ID)
	s.Equal("in_progress", resp.Round.Status)
	s.Equal("2025-04-19", resp.Round.Date)
	s.True(resp.Round.Daily)
	s.Empty(resp.Round.Solution)
	s.Empty(resp.Round.Guesses)
	s.Equal("Daily puzzle 2025-04-19", resp.Title)
	s.NotContains(rec.Body.String(), "crane")
}

func (s *HandlerTestSuite) TestStartRoundConflict() {
	first := s.startRound(map[string]any{"playerId": s.testPlayerID})

	rec := s.do(s.router, http.MethodPost, "/rounds", map[string]any{"playerId": s.testPlayerID})
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(round.ErrRoundInProgress.Error(), decode[errorResponse](s, rec).Error)

	rec = s.do(s.router, http.MethodPost, "/rounds", map[string]any{"playerId": s.testPlayerID, "replace": true})
	s.Require().Equal(http.StatusCreated, rec.Code)
	resp := decode[startRoundResponse](s, rec)
	s.Equal(first.ID, resp.Abandoned)
	s.NotEqual(first.ID, resp.Round.ID)
}

func (s *HandlerTestSuite) TestStartRoundValidation() {
	rec := s.do(s.router, http.MethodPost, "/rounds", map[string]any{"daily": true})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(s.router, http.MethodPost, "/rounds", map[string]any{"playerId": s.testPlayerID, "locale": "xx"})
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *HandlerTestSuite) TestPlayRoundToWin() {
	started := s.startRound(map[string]any{"playerId": s.testPlayerID})

	rec := s.guess(started.ID, "STARE")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	first := decode[submitGuessResponse](s, rec)
	s.Equal(0, first.Row)
	s.Equal("stare", first.Guess.Word)
	s.Equal([]string{"absent", "absent", "correct", "present", "correct"}, first.Guess.Matches)
	s.Equal(48, first.Round.Vibe.Score)
	s.Equal("Good Vibes", first.Round.Vibe.Label)
	s.Require().NotEmpty(first.Reveal)
	s.Equal(first.Round.Vibe.Score, first.Reveal[len(first.Reveal)-1].Score)
	s.False(first.IsOver)
	s.Empty(first.Round.Solution)
	s.Equal("correct", first.Round.Keys["a"])
	s.Equal("present", first.Round.Keys["r"])
	s.Nil(first.Statistics)

	rec = s.guess(started.ID, "crane")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	second := decode[submitGuessResponse](s, rec)
	s.True(second.IsWin)
	s.True(second.IsOver)
	s.Equal("won", second.Round.Status)
	s.Equal("crane", second.Round.Solution)
	s.Equal(100, second.Round.Vibe.Score)
	s.Equal("Perfect Vibe!", second.Round.Vibe.Label)
	s.Equal("up", second.Round.Vibe.Trend)
	s.Equal("Magnificent", second.Title)
	s.Require().NotNil(second.Statistics)
	s.Equal(1, second.Statistics.GamesWon)
	s.Equal(1, second.Statistics.GuessDistribution[1])
	s.Equal(0, second.Statistics.CurrentStreak, "casual rounds never touch the streak")

	rec = s.guess(started.ID, "trace")
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestGuessErrors() {
	started := s.startRound(map[string]any{"playerId": s.testPlayerID})

	tests := []struct {
		name     string
		path     string
		body     map[string]any
		status   int
		errorMsg string
	}{
		{
			name:     "not in word list",
			path:     "/rounds/" + started.ID + "/guesses",
			body:     map[string]any{"playerId": s.testPlayerID, "word": "zzzzz"},
			status:   http.StatusUnprocessableEntity,
			errorMsg: round.ErrNotInWordList.Error(),
		},
		{
			name:   "wrong length",
			path:   "/rounds/" + started.ID + "/guesses",
			body:   map[string]any{"playerId": s.testPlayerID, "word": "abc"},
			status: http.StatusUnprocessableEntity,
		},
		{
			name:     "unknown round",
			path:     "/rounds/missing/guesses",
			body:     map[string]any{"playerId": s.testPlayerID, "word": "stare"},
			status:   http.StatusNotFound,
			errorMsg: round.ErrRoundNotFound.Error(),
		},
		{
			name:     "another player's round",
			path:     "/rounds/" + started.ID + "/guesses",
			body:     map[string]any{"playerId": "player-2", "word": "stare"},
			status:   http.StatusForbidden,
			errorMsg: round.ErrNotRoundOwner.Error(),
		},
		{
			name:   "missing word",
			path:   "/rounds/" + started.ID + "/guesses",
			body:   map[string]any{"playerId": s.testPlayerID},
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(s.router, http.MethodPost, tt.path, tt.body)
			s.Equal(tt.status, rec.Code, rec.Body.String())

			resp := decode[errorResponse](s, rec)
			s.NotEmpty(resp.Message)
			if tt.errorMsg != "" {
				s.Equal(tt.errorMsg, resp.Error)
			}
		})
	}

	rec := s.do(s.router, http.MethodGet, "/rounds/"+started.ID, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(0, decode[roundResponse](s, rec).CurrentRow, "rejected guesses do not use a row")
}

func (s *HandlerTestSuite) TestHardModeViolation() {
	started := s.startRound(map[string]any{"playerId": s.testPlayerID, "hardMode": true})

	rec := s.guess(started.ID, "stare")
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.guess(started.ID, "moist")
	s.Require().Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	resp := decode[errorResponse](s, rec)
	s.Equal("hard mode violation", resp.Error)
	s.Equal("3rd letter must be A", resp.Message)
	s.Require().NotNil(resp.Violation)
	s.Equal(violationResponse{Kind: "misplaced_correct", Position: 2, Letter: "a"}, *resp.Violation)

	rec = s.do(s.router, http.MethodGet, "/rounds/"+started.ID, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(1, decode[roundResponse](s, rec).CurrentRow)
}

func (s *HandlerTestSuite) TestGuessRateLimit() {
	router := s.newRouter(ratelimit.New(1, 1), nil)
	started := s.startRound(map[string]any{"playerId": s.testPlayerID})
	body := map[string]any{"playerId": s.testPlayerID, "word": "stare"}

	rec := s.do(router, http.MethodPost, "/rounds/"+started.ID+"/guesses", body)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(router, http.MethodPost, "/rounds/"+started.ID+"/guesses", body)
	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Equal(messaging.ErrSlowDown.Error(), decode[errorResponse](s, rec).Error)
}

func (s *HandlerTestSuite) TestActiveRound() {
	rec := s.do(s.router, http.MethodGet, "/players/"+s.testPlayerID+"/round", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	started := s.startRound(map[string]any{"playerId": s.testPlayerID})

	rec = s.do(s.router, http.MethodGet, "/players/"+s.testPlayerID+"/round", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(started.ID, decode[roundResponse](s, rec).ID)
}

func (s *HandlerTestSuite) TestAbandonRound() {
	started := s.startRound(map[string]any{"playerId": s.testPlayerID, "daily": true})
	s.Require().Equal(http.StatusOK, s.guess(started.ID, "stare").Code)

	rec := s.do(s.router, http.MethodDelete, "/rounds/"+started.ID+"?playerId=player-2", nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(s.router, http.MethodDelete, "/rounds/"+started.ID+"?playerId="+s.testPlayerID, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[abandonRoundResponse](s, rec)
	s.Equal("lost", resp.Round.Status)
	s.Equal("crane", resp.Round.Solution)
	s.Equal(48, resp.Round.Vibe.Score)
	s.Require().NotNil(resp.Statistics)
	s.Equal(1, resp.Statistics.GamesPlayed)
	s.Equal(0, resp.Statistics.GamesWon)
	s.Equal("2025-04-19", resp.Statistics.LastCompletedDate)

	rec = s.do(s.router, http.MethodGet, "/players/"+s.testPlayerID+"/round", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestAbandonRoundRequiresPlayer() {
	started := s.startRound(map[string]any{"playerId": s.testPlayerID, "daily": true})
	s.Require().Equal(http.StatusOK, s.guess(started.ID, "stare").Code)

	rec := s.do(s.router, http.MethodDelete, "/rounds/"+started.ID, nil)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Equal(errMissingPlayerID.Error(), decode[errorResponse](s, rec).Message)

	rec = s.do(s.router, http.MethodGet, "/players/"+s.testPlayerID+"/round", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	active := decode[roundResponse](s, rec)
	s.Equal(started.ID, active.ID)
	s.Equal("in_progress", active.Status)

	rec = s.do(s.router, http.MethodGet, "/players/"+s.testPlayerID+"/stats", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(0, decode[statisticsResponse](s, rec).GamesPlayed)
}

func (s *HandlerTestSuite) TestStatistics() {
	rec := s.do(s.router, http.MethodGet, "/players/"+s.testPlayerID+"/stats", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(statisticsResponse{}, decode[statisticsResponse](s, rec))

	started := s.startRound(map[string]any{"playerId": s.testPlayerID, "daily": true})
	s.Require().Equal(http.StatusOK, s.guess(started.ID, "crane").Code)

	rec = s.do(s.router, http.MethodGet, "/players/"+s.testPlayerID+"/stats", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	stats := decode[statisticsResponse](s, rec)
	s.Equal(1, stats.GamesPlayed)
	s.Equal(100, stats.WinPercentage)
	s.Equal(1, stats.CurrentStreak)
	s.Equal(1, stats.MaxStreak)
	s.Equal(1, stats.GuessDistribution[0])

	rec = s.do(s.router, http.MethodDelete, "/players/"+s.testPlayerID+"/stats", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(statisticsResponse{}, decode[statisticsResponse](s, rec))
}

func (s *HandlerTestSuite) TestLeaderboard() {
	rec := s.do(s.router, http.MethodGet, "/leaderboard", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	empty := decode[leaderboardResponse](s, rec)
	s.Equal("2025-04-19", empty.Date)
	s.Equal("en", empty.Locale)
	s.Empty(empty.Entries)

	started := s.do(s.router, http.MethodPost, "/rounds", map[string]any{
		"playerId":   s.testPlayerID,
		"playerName": "Kirk",
		"daily":      true,
	})
	s.Require().Equal(http.StatusCreated, started.Code, started.Body.String())
	r := decode[startRoundResponse](s, started).Round
	s.Require().Equal(http.StatusOK, s.guess(r.ID, "crane").Code)

	rec = s.do(s.router, http.MethodGet, "/leaderboard?date=2025-04-19&locale=en&limit=10", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	board := decode[leaderboardResponse](s, rec)
	s.Require().Len(board.Entries, 1)
	s.Equal(1, board.Entries[0].Rank)
	s.Equal("Kirk", board.Entries[0].PlayerName)
	s.Equal(1, board.Entries[0].GuessCount)
	s.True(board.Entries[0].IsWin)
}

func (s *HandlerTestSuite) TestLeaderboardValidation() {
	rec := s.do(s.router, http.MethodGet, "/leaderboard?date=2025-02-30", nil)
	s.Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	rec = s.do(s.router, http.MethodGet, "/leaderboard?limit=-1", nil)
	s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
}
