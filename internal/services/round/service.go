package round

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/wordvibe/internal/common/calendar"
	"github.com/KirkDiggler/wordvibe/internal/common/clock"
	"github.com/KirkDiggler/wordvibe/internal/common/uuid"
	"github.com/KirkDiggler/wordvibe/internal/hardmode"
	"github.com/KirkDiggler/wordvibe/internal/match"
	"github.com/KirkDiggler/wordvibe/internal/models"
	leaderboardRepo "github.com/KirkDiggler/wordvibe/internal/repositories/leaderboard"
	roundRepo "github.com/KirkDiggler/wordvibe/internal/repositories/round"
	statsService "github.com/KirkDiggler/wordvibe/internal/services/statistics"
	"github.com/KirkDiggler/wordvibe/internal/vibe"
)

const defaultLocale = "en"

// service implements the Service interface
type service struct {
	defaultLocale string
	roundRepo     roundRepo.Repository
	leaderboard   leaderboardRepo.Repository
	statsService  statsService.Service
	dictionary    Dictionary
	selector      Selector
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new round service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoundRepo == nil {
		return nil, ErrNilRoundRepo
	}

	if cfg.StatsService == nil {
		return nil, ErrNilStatsService
	}

	if cfg.Dictionary == nil {
		return nil, ErrNilDictionary
	}

	if cfg.Selector == nil {
		return nil, ErrNilSelector
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	locale := cfg.DefaultLocale
	if locale == "" {
		locale = defaultLocale
	}

	return &service{
		defaultLocale: locale,
		roundRepo:     cfg.RoundRepo,
		leaderboard:   cfg.Leaderboard,
		statsService:  cfg.StatsService,
		dictionary:    cfg.Dictionary,
		selector:      cfg.Selector,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// StartRound creates a new round for a player
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	output := &StartRoundOutput{}

	existing, err := s.roundRepo.GetActiveRound(ctx, &roundRepo.GetActiveRoundInput{
		PlayerID: input.PlayerID,
	})
	switch {
	case err == nil:
		if !input.Replace {
			return nil, ErrRoundInProgress
		}
		abandoned, err := s.AbandonRound(ctx, &AbandonRoundInput{
			RoundID:  existing.ID,
			PlayerID: input.PlayerID,
		})
		// Lost a race with the round finishing on its own
		if err != nil && !errors.Is(err, ErrRoundOver) {
			return nil, err
		}
		if abandoned != nil {
			output.Abandoned = abandoned.Round
		}
	case !errors.Is(err, roundRepo.ErrRoundNotFound):
		return nil, err
	}

	locale := input.Locale
	if locale == "" {
		locale = s.defaultLocale
	}

	var solution models.Solution
	if input.Daily {
		solution, err = s.selector.DailyWord(calendar.Today(s.clock), locale)
	} else {
		solution, err = s.selector.RandomWord(locale)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select word: %w", err)
	}

	now := s.clock.Now()
	round := &models.Round{
		ID:          s.uuidGenerator.NewUUID(),
		PlayerID:    input.PlayerID,
		PlayerName:  input.PlayerName,
		ChannelID:   input.ChannelID,
		Solution:    solution,
		HardMode:    input.HardMode,
		KeyStatuses: models.NewKeyStatusMap(),
		Status:      models.RoundStatusInProgress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.roundRepo.SaveRound(ctx, &roundRepo.SaveRoundInput{
		Round: round,
	}); err != nil {
		return nil, err
	}

	output.Round = round
	return output, nil
}

// SubmitGuess plays one guess in a round
func (s *service) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	if input == nil || input.RoundID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	if err := match.ValidateShape(input.Word); err != nil {
		return nil, err
	}
	word := strings.ToLower(input.Word)

	var (
		row       int
		violation *hardmode.Violation
		snapshot  models.Round
	)

	round, err := s.roundRepo.UpdateRound(ctx, &roundRepo.UpdateRoundInput{
		RoundID: input.RoundID,
		Update: func(round *models.Round) error {
			violation = nil
			if err := s.checkPlayable(round, input.PlayerID); err != nil {
				return err
			}

			ok, err := s.dictionary.IsValidWord(round.Solution.Locale, word)
			if err != nil {
				return err
			}
			if !ok {
				return ErrNotInWordList
			}

			if round.HardMode {
				violation, err = hardmode.Check(word, round.Guesses[:], round.CurrentRow)
				if err != nil {
					return err
				}
				if violation != nil {
					snapshot = *round
					return errHardModeViolation
				}
			}

			statuses, err := match.Evaluate(word, round.Solution.Word)
			if err != nil {
				return err
			}

			guess, err := models.GuessFromWord(word)
			if err != nil {
				return err
			}
			if err := guess.Finalize(statuses); err != nil {
				return err
			}

			row = round.CurrentRow
			round.Guesses[row] = guess
			round.KeyStatuses.Apply(guess)
			round.CurrentRow++
			round.UpdatedAt = s.clock.Now()

			switch {
			case guess.IsCorrect:
				round.Status = models.RoundStatusWon
			case round.CurrentRow >= models.MaxGuesses:
				round.Status = models.RoundStatusLost
			}

			return nil
		},
	})
	if errors.Is(err, errHardModeViolation) {
		return &SubmitGuessOutput{
			Round:     &snapshot,
			Violation: violation,
			Row:       snapshot.CurrentRow,
		}, nil
	}
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	score, err := vibe.Score(round.CompletedGuesses(), round.Solution.Word)
	if err != nil {
		return nil, err
	}
	reveal, err := vibe.RevealSequence(round.Guesses[:row+1], round.Solution.Word, row)
	if err != nil {
		return nil, err
	}

	output := &SubmitGuessOutput{
		Round:  round,
		Row:    row,
		Guess:  round.Guesses[row],
		Vibe:   score,
		Reveal: reveal,
		IsWin:  round.Status == models.RoundStatusWon,
		IsOver: round.Status.IsOver(),
	}

	if output.IsOver {
		output.Statistics = s.recordResult(ctx, round)
	}

	return output, nil
}

// GetRound returns a round by ID
func (s *service) GetRound(ctx context.Context, input *GetRoundInput) (*GetRoundOutput, error) {
	if input == nil || input.RoundID == "" {
		return nil, ErrInvalidInput
	}

	round, err := s.roundRepo.GetRound(ctx, &roundRepo.GetRoundInput{
		RoundID: input.RoundID,
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	score, err := vibe.Score(round.CompletedGuesses(), round.Solution.Word)
	if err != nil {
		return nil, err
	}

	return &GetRoundOutput{
		Round: round,
		Vibe:  score,
	}, nil
}

// GetActiveRound returns the in-progress round of a player
func (s *service) GetActiveRound(ctx context.Context, input *GetActiveRoundInput) (*GetActiveRoundOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	round, err := s.roundRepo.GetActiveRound(ctx, &roundRepo.GetActiveRoundInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	score, err := vibe.Score(round.CompletedGuesses(), round.Solution.Word)
	if err != nil {
		return nil, err
	}

	return &GetActiveRoundOutput{
		Round: round,
		Vibe:  score,
	}, nil
}

// AbandonRound gives up on a round. A round with at least one guess counts
// as a loss; an untouched round is simply closed.
func (s *service) AbandonRound(ctx context.Context, input *AbandonRoundInput) (*AbandonRoundOutput, error) {
	if input == nil || input.RoundID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	round, err := s.roundRepo.UpdateRound(ctx, &roundRepo.UpdateRoundInput{
		RoundID: input.RoundID,
		Update: func(round *models.Round) error {
			if err := s.checkPlayable(round, input.PlayerID); err != nil {
				return err
			}
			round.Status = models.RoundStatusLost
			round.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	output := &AbandonRoundOutput{Round: round}
	if round.CurrentRow > 0 {
		output.Statistics = s.recordResult(ctx, round)
	}

	return output, nil
}

// GetLeaderboard returns the ranked results of a daily puzzle
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.Limit < 0 {
		return nil, ErrInvalidInput
	}
	if s.leaderboard == nil {
		return nil, ErrNoLeaderboard
	}

	date := input.Date
	if date == "" {
		date = calendar.Today(s.clock)
	}
	day, err := calendar.Parse(date)
	if err != nil {
		return nil, err
	}

	locale := input.Locale
	if locale == "" {
		locale = s.defaultLocale
	}

	entries, err := s.leaderboard.GetLeaderboard(ctx, &leaderboardRepo.GetLeaderboardInput{
		Date:   day.String(),
		Locale: locale,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{
		Date:    day.String(),
		Locale:  locale,
		Entries: entries,
	}, nil
}

func (s *service) checkPlayable(round *models.Round, playerID string) error {
	if round.PlayerID != playerID {
		return ErrNotRoundOwner
	}
	if !round.Status.IsInProgress() {
		return ErrRoundOver
	}
	return nil
}

// recordResult applies a finished round to the player's statistics. The round
// is already stored as over, so a failure here is logged rather than undoing it.
func (s *service) recordResult(ctx context.Context, round *models.Round) *models.GameStatistics {
	date := s.resultDate(round)
	s.recordLeaderboard(ctx, round)

	var (
		updated models.GameStatistics
		err     error
	)
	if round.Status == models.RoundStatusWon {
		var out *statsService.RecordWinOutput
		out, err = s.statsService.RecordWin(ctx, &statsService.RecordWinInput{
			PlayerID:   round.PlayerID,
			GuessCount: round.CurrentRow,
			Date:       date,
			IsDaily:    round.Solution.IsDaily,
		})
		if err == nil {
			updated = out.Statistics
		}
	} else {
		var out *statsService.RecordLossOutput
		out, err = s.statsService.RecordLoss(ctx, &statsService.RecordLossInput{
			PlayerID: round.PlayerID,
			Date:     date,
			IsDaily:  round.Solution.IsDaily,
		})
		if err == nil {
			updated = out.Statistics
		}
	}

	if err != nil {
		log.Error().Err(err).
			Str("round_id", round.ID).
			Str("player_id", round.PlayerID).
			Str("status", string(round.Status)).
			Msg("failed to record round result")
		return nil
	}

	return &updated
}

// recordLeaderboard ranks a finished daily round; failures are logged like
// statistics failures
func (s *service) recordLeaderboard(ctx context.Context, round *models.Round) {
	if s.leaderboard == nil || !round.Solution.IsDaily {
		return
	}

	out, err := s.leaderboard.RecordResult(ctx, &leaderboardRepo.RecordResultInput{
		Date:       round.Solution.Date,
		Locale:     round.Solution.Locale,
		PlayerID:   round.PlayerID,
		PlayerName: round.PlayerName,
		GuessCount: round.CurrentRow,
		IsWin:      round.Status == models.RoundStatusWon,
		FinishedAt: round.UpdatedAt,
	})
	if err != nil {
		log.Error().Err(err).
			Str("round_id", round.ID).
			Str("player_id", round.PlayerID).
			Msg("failed to record leaderboard result")
		return
	}
	if !out.Recorded {
		log.Debug().
			Str("player_id", round.PlayerID).
			Str("date", round.Solution.Date).
			Msg("daily puzzle replayed, leaderboard keeps the first result")
	}
}

// resultDate is the puzzle's day for daily rounds, so a daily finished after
// midnight still extends the streak of the day it belongs to
func (s *service) resultDate(round *models.Round) string {
	if round.Solution.IsDaily && round.Solution.Date != "" {
		return round.Solution.Date
	}
	return calendar.Today(s.clock)
}

func (s *service) mapRepoError(err error) error {
	if errors.Is(err, roundRepo.ErrRoundNotFound) {
		return ErrRoundNotFound
	}
	return err
}
