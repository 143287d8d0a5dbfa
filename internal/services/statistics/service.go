package statistics

import (
	"context"

	"github.com/KirkDiggler/wordvibe/internal/models"
	statsRepo "github.com/KirkDiggler/wordvibe/internal/repositories/statistics"
	"github.com/KirkDiggler/wordvibe/internal/stats"
)

// service implements the Service interface
type service struct {
	statsRepo statsRepo.Repository
}

// New creates a new statistics service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	return &service{
		statsRepo: cfg.StatsRepo,
	}, nil
}

// GetStatistics returns a player's statistics
func (s *service) GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.statsRepo.GetStatistics(ctx, &statsRepo.GetStatisticsInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	return &GetStatisticsOutput{
		Statistics:    *current,
		WinPercentage: current.WinPercentage(),
	}, nil
}

// RecordWin applies a won round to a player's statistics
func (s *service) RecordWin(ctx context.Context, input *RecordWinInput) (*RecordWinOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	updated, err := s.apply(ctx, input.PlayerID, stats.Win{
		GuessCount: input.GuessCount,
		Date:       input.Date,
		IsDaily:    input.IsDaily,
	})
	if err != nil {
		return nil, err
	}

	return &RecordWinOutput{Statistics: *updated}, nil
}

// RecordLoss applies a lost round to a player's statistics
func (s *service) RecordLoss(ctx context.Context, input *RecordLossInput) (*RecordLossOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	updated, err := s.apply(ctx, input.PlayerID, stats.Loss{
		Date:    input.Date,
		IsDaily: input.IsDaily,
	})
	if err != nil {
		return nil, err
	}

	return &RecordLossOutput{Statistics: *updated}, nil
}

// ResetStatistics clears a player's statistics
func (s *service) ResetStatistics(ctx context.Context, input *ResetStatisticsInput) (*ResetStatisticsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	updated, err := s.apply(ctx, input.PlayerID, stats.ResetEvent{})
	if err != nil {
		return nil, err
	}

	return &ResetStatisticsOutput{Statistics: *updated}, nil
}

// apply reduces event onto the stored statistics under the repository's
// compare-and-swap, so concurrent results for one player are never lost
func (s *service) apply(ctx context.Context, playerID string, event stats.Event) (*models.GameStatistics, error) {
	return s.statsRepo.UpdateStatistics(ctx, &statsRepo.UpdateStatisticsInput{
		PlayerID: playerID,
		Transition: func(current models.GameStatistics) (models.GameStatistics, error) {
			return stats.Reduce(current, event)
		},
	})
}
