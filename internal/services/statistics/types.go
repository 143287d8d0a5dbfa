package statistics

import (
	"github.com/KirkDiggler/wordvibe/internal/models"
	statsRepo "github.com/KirkDiggler/wordvibe/internal/repositories/statistics"
)

// Config holds configuration for the statistics service
type Config struct {
	// Repository dependencies
	StatsRepo statsRepo.Repository
}

// GetStatisticsInput contains parameters for reading statistics
type GetStatisticsInput struct {
	// PlayerID identifies the player
	PlayerID string
}

// GetStatisticsOutput contains a player's statistics
type GetStatisticsOutput struct {
	Statistics models.GameStatistics

	// WinPercentage is the rounded share of games won
	WinPercentage int
}

// RecordWinInput contains parameters for recording a win
type RecordWinInput struct {
	PlayerID string

	// GuessCount is the number of guesses the win took, 1 to 6
	GuessCount int

	// Date is the UTC day the round finished, YYYY-MM-DD
	Date string

	// IsDaily indicates the round was the daily puzzle
	IsDaily bool
}

// RecordWinOutput contains the updated statistics
type RecordWinOutput struct {
	Statistics models.GameStatistics
}

// RecordLossInput contains parameters for recording a loss
type RecordLossInput struct {
	PlayerID string
	Date     string
	IsDaily  bool
}

// RecordLossOutput contains the updated statistics
type RecordLossOutput struct {
	Statistics models.GameStatistics
}

// ResetStatisticsInput contains parameters for clearing statistics
type ResetStatisticsInput struct {
	PlayerID string
}

// ResetStatisticsOutput contains the cleared statistics
type ResetStatisticsOutput struct {
	Statistics models.GameStatistics
}
